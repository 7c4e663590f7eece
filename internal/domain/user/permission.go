package user

type Permission string

const (
	// Self service
	PermissionAttendanceSelf Permission = "attendance.self"
	PermissionLeaveCreate    Permission = "leave.create"

	// Attendance
	PermissionAttendanceViewAll Permission = "attendance.view_all"

	// Leave
	PermissionLeaveViewAll Permission = "leave.view_all"
	PermissionLeaveApprove Permission = "leave.approve"

	// Payroll
	PermissionPayrollViewAll Permission = "payroll.view_all"

	// Performance
	PermissionPerformanceViewAll Permission = "performance.view_all"
	PermissionPerformanceEditAll Permission = "performance.edit_all"

	// Administration
	PermissionUserManage   Permission = "user.manage"
	PermissionActivityView Permission = "activity.view"
)

// RolePermissions maps roles to their permissions. Every role in Roles must
// have an entry.
var RolePermissions = map[Role][]Permission{
	RoleAdmin: {
		PermissionAttendanceSelf,
		PermissionLeaveCreate,
		PermissionAttendanceViewAll,
		PermissionLeaveViewAll,
		PermissionLeaveApprove,
		PermissionPayrollViewAll,
		PermissionPerformanceViewAll,
		PermissionPerformanceEditAll,
		PermissionUserManage,
		PermissionActivityView,
	},
	RoleHR: {
		PermissionAttendanceSelf,
		PermissionLeaveCreate,
		PermissionAttendanceViewAll,
		PermissionLeaveViewAll,
		PermissionLeaveApprove,
		PermissionPayrollViewAll,
		PermissionPerformanceViewAll,
		PermissionPerformanceEditAll,
	},
	RoleFinance: {
		PermissionAttendanceSelf,
		PermissionLeaveCreate,
		PermissionPayrollViewAll,
	},
	RoleManager: {
		PermissionAttendanceSelf,
		PermissionLeaveCreate,
		PermissionLeaveViewAll,
		PermissionLeaveApprove,
	},
	RoleEmployee: {
		PermissionAttendanceSelf,
		PermissionLeaveCreate,
	},
}

// HasPermission checks if a role has a specific permission
func HasPermission(role Role, permission Permission) bool {
	permissions, exists := RolePermissions[role]
	if !exists {
		return false
	}

	for _, p := range permissions {
		if p == permission {
			return true
		}
	}

	return false
}
