package fixtures

import (
	"github.com/hrms-suite/hrms-backend-go/internal/domain/department"
	"github.com/hrms-suite/hrms-backend-go/internal/domain/employee"
	"github.com/hrms-suite/hrms-backend-go/internal/domain/jobtitle"
	"github.com/hrms-suite/hrms-backend-go/internal/domain/training"
	"github.com/shopspring/decimal"
)

// ==========================================
// HELPER FUNCTIONS
// ==========================================

func intPtr(i int) *int       { return &i }
func strPtr(s string) *string { return &s }

func money(v int64) decimal.NullDecimal {
	return decimal.NewNullDecimal(decimal.NewFromInt(v))
}

// ==========================================
// DEMO ACCOUNT
// ==========================================

const (
	AdminEmail    = "admin@hrms.com"
	AdminPassword = "admin123"
)

// ==========================================
// SEEDED DATA RESULT
// ==========================================

// SeededDataIDs holds ids of the seeded demo data.
type SeededDataIDs struct {
	AdminUserID       int64
	DepartmentIDs     map[string]int64 // by code, e.g. "HR"
	JobTitleIDs       map[string]int64 // by code, e.g. "IT-DEV"
	EmployeeIDs       map[string]int64 // by employee number, e.g. "EMP001"
	TrainingProgramID int64
}

func NewSeededDataIDs() *SeededDataIDs {
	return &SeededDataIDs{
		DepartmentIDs: make(map[string]int64),
		JobTitleIDs:   make(map[string]int64),
		EmployeeIDs:   make(map[string]int64),
	}
}

// ==========================================
// DEFAULT DEPARTMENTS
// ==========================================

func GetDefaultDepartments() []department.Department {
	return []department.Department{
		{Name: "Human Resources", Code: strPtr("HR"), Description: strPtr("Staffing and employee relations"), Budget: decimal.NewFromInt(500000)},
		{Name: "Information Technology", Code: strPtr("IT"), Description: strPtr("Systems development and support"), Budget: decimal.NewFromInt(800000)},
		{Name: "Finance", Code: strPtr("FIN"), Description: strPtr("Accounting and financial affairs"), Budget: decimal.NewFromInt(400000)},
		{Name: "Marketing", Code: strPtr("MKT"), Description: strPtr("Product and service marketing"), Budget: decimal.NewFromInt(600000)},
		{Name: "Operations", Code: strPtr("OPS"), Description: strPtr("Day to day operations"), Budget: decimal.NewFromInt(1000000)},
	}
}

// ==========================================
// DEFAULT JOB TITLES
// ==========================================

// demoJobTitle pairs a job title with the code of its department.
type demoJobTitle struct {
	DepartmentCode string
	JobTitle       jobtitle.JobTitle
}

func getDefaultJobTitles() []demoJobTitle {
	jt := func(dept, title, code, level, desc, resp, req string, min, max int64) demoJobTitle {
		return demoJobTitle{
			DepartmentCode: dept,
			JobTitle: jobtitle.JobTitle{
				Title:            title,
				Code:             strPtr(code),
				Level:            strPtr(level),
				Description:      strPtr(desc),
				Responsibilities: strPtr(resp),
				Requirements:     strPtr(req),
				MinSalary:        money(min),
				MaxSalary:        money(max),
			},
		}
	}
	return []demoJobTitle{
		jt("HR", "HR Manager", "HR-MGR", "management", "Leads the HR department", "Leadership and people management", "10 years experience", 15000, 20000),
		jt("HR", "Recruitment Specialist", "HR-REC", "staff", "Recruiting and hiring", "Communication skills", "3 years experience", 7000, 10000),
		jt("IT", "IT Manager", "IT-MGR", "management", "Leads the IT department", "Technical and managerial skills", "12 years experience", 18000, 25000),
		jt("IT", "Software Developer", "IT-DEV", "staff", "Builds software", "Several programming languages", "2-5 years experience", 8000, 12000),
		jt("FIN", "Finance Manager", "FIN-MGR", "management", "Leads the finance department", "Accounting certification", "10 years experience", 16000, 22000),
		jt("FIN", "Financial Analyst", "FIN-AN", "staff", "Financial analysis", "Analytical skills", "3 years experience", 7000, 10000),
		jt("MKT", "Marketing Manager", "MKT-MGR", "management", "Leads the marketing department", "Marketing background", "8 years experience", 14000, 19000),
		jt("MKT", "Digital Marketing Specialist", "MKT-DIG", "staff", "Digital marketing", "Social media skills", "2 years experience", 6000, 9000),
	}
}

// ==========================================
// DEMO EMPLOYEES
// ==========================================

type demoEmployee struct {
	DepartmentCode string
	JobTitleCode   string
	ManagerNumber  string
	Employee       employee.Employee
}

func getDemoEmployees() []demoEmployee {
	emp := func(number, first, last, email, phone, dob, gender, nationalID, marital, city, hired, location string, salary int64) employee.Employee {
		return employee.Employee{
			EmployeeNumber: number,
			FirstName:      first,
			LastName:       last,
			Email:          strPtr(email),
			Phone:          strPtr(phone),
			DateOfBirth:    strPtr(dob),
			Gender:         strPtr(gender),
			NationalID:     strPtr(nationalID),
			MaritalStatus:  strPtr(marital),
			Address:        strPtr(city),
			City:           strPtr(city),
			Country:        strPtr("Saudi Arabia"),
			HireDate:       strPtr(hired),
			EmploymentType: strPtr("full_time"),
			WorkLocation:   strPtr(location),
			Salary:         money(salary),
			Status:         employee.StatusActive,
		}
	}
	return []demoEmployee{
		{"HR", "HR-MGR", "", emp("EMP001", "Ahmed", "Al-Omari", "ahmed.alomari@company.com", "0501234567", "1980-05-15", "male", "1234567890", "married", "Riyadh", "2010-01-01", "Head Office", 18000)},
		{"IT", "IT-MGR", "", emp("EMP002", "Sara", "Al-Zahrani", "sara.alzahrani@company.com", "0501234568", "1985-08-20", "female", "1234567891", "married", "Jeddah", "2012-03-15", "Jeddah Branch", 20000)},
		{"FIN", "FIN-MGR", "", emp("EMP003", "Khaled", "Al-Salem", "khaled.alsalem@company.com", "0501234569", "1982-12-10", "male", "1234567892", "married", "Dammam", "2011-06-01", "Dammam Branch", 19000)},
		{"MKT", "MKT-MGR", "", emp("EMP004", "Noura", "Al-Qahtani", "noura.alqahtani@company.com", "0501234570", "1990-03-25", "female", "1234567893", "single", "Riyadh", "2015-09-01", "Head Office", 16000)},
		{"HR", "HR-REC", "EMP001", emp("EMP005", "Fahad", "Al-Otaibi", "fahad.alotaibi@company.com", "0501234571", "1988-07-18", "male", "1234567894", "married", "Riyadh", "2013-04-15", "Head Office", 9000)},
	}
}

// ==========================================
// DEFAULT TRAINING PROGRAM
// ==========================================

func GetDefaultTrainingProgram() training.Program {
	return training.Program{
		Name:          "Leadership Essentials",
		Description:   strPtr("Building leadership and management skills"),
		Trainer:       strPtr("Dr. Mohammed Ali"),
		Location:      strPtr("Main Training Hall"),
		StartDate:     "2024-07-01",
		EndDate:       "2024-07-05",
		DurationHours: intPtr(40),
		Capacity:      30,
		Cost:          money(5000),
		Status:        training.ProgramScheduled,
	}
}
