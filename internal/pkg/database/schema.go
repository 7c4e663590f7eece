package database

// Calendar dates are TEXT (YYYY-MM-DD) and clock times TEXT (HH:MM:SS) so the
// driver hands them back as plain strings.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		email TEXT UNIQUE NOT NULL,
		password TEXT NOT NULL,
		role TEXT NOT NULL DEFAULT 'employee',
		employee_id INTEGER,
		is_active INTEGER NOT NULL DEFAULT 1,
		last_login DATETIME,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (employee_id) REFERENCES employees(id) ON DELETE SET NULL
	)`,
	`CREATE TABLE IF NOT EXISTS departments (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		code TEXT UNIQUE,
		description TEXT,
		parent_id INTEGER,
		manager_id INTEGER,
		budget REAL NOT NULL DEFAULT 0,
		employee_count INTEGER NOT NULL DEFAULT 0,
		is_active INTEGER NOT NULL DEFAULT 1,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (parent_id) REFERENCES departments(id) ON DELETE SET NULL,
		FOREIGN KEY (manager_id) REFERENCES employees(id) ON DELETE SET NULL
	)`,
	`CREATE TABLE IF NOT EXISTS job_titles (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		title TEXT NOT NULL,
		code TEXT UNIQUE,
		department_id INTEGER,
		level TEXT,
		description TEXT,
		responsibilities TEXT,
		requirements TEXT,
		min_salary REAL,
		max_salary REAL,
		is_active INTEGER NOT NULL DEFAULT 1,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (department_id) REFERENCES departments(id) ON DELETE SET NULL
	)`,
	`CREATE TABLE IF NOT EXISTS employees (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		employee_number TEXT UNIQUE NOT NULL,
		first_name TEXT NOT NULL,
		last_name TEXT NOT NULL,
		email TEXT UNIQUE,
		phone TEXT,
		date_of_birth TEXT,
		gender TEXT,
		national_id TEXT UNIQUE,
		marital_status TEXT,
		address TEXT,
		city TEXT,
		country TEXT,
		department_id INTEGER,
		job_title_id INTEGER,
		manager_id INTEGER,
		hire_date TEXT,
		employment_type TEXT,
		work_location TEXT,
		salary REAL,
		status TEXT NOT NULL DEFAULT 'active',
		profile_image TEXT,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (department_id) REFERENCES departments(id) ON DELETE SET NULL,
		FOREIGN KEY (job_title_id) REFERENCES job_titles(id) ON DELETE SET NULL,
		FOREIGN KEY (manager_id) REFERENCES employees(id) ON DELETE SET NULL
	)`,
	`CREATE TABLE IF NOT EXISTS attendance (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		employee_id INTEGER NOT NULL,
		date TEXT NOT NULL,
		check_in TEXT,
		check_out TEXT,
		work_hours REAL,
		status TEXT NOT NULL DEFAULT 'present',
		notes TEXT,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		UNIQUE (employee_id, date),
		FOREIGN KEY (employee_id) REFERENCES employees(id)
	)`,
	`CREATE TABLE IF NOT EXISTS leave_requests (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		employee_id INTEGER NOT NULL,
		leave_type TEXT NOT NULL,
		start_date TEXT NOT NULL,
		end_date TEXT NOT NULL,
		days_count INTEGER NOT NULL,
		reason TEXT,
		status TEXT NOT NULL DEFAULT 'pending',
		approved_by INTEGER,
		approval_date TEXT,
		approval_notes TEXT,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (employee_id) REFERENCES employees(id),
		FOREIGN KEY (approved_by) REFERENCES employees(id)
	)`,
	`CREATE TABLE IF NOT EXISTS payroll (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		employee_id INTEGER NOT NULL,
		month INTEGER NOT NULL,
		year INTEGER NOT NULL,
		basic_salary REAL NOT NULL,
		allowances REAL NOT NULL DEFAULT 0,
		bonuses REAL NOT NULL DEFAULT 0,
		deductions REAL NOT NULL DEFAULT 0,
		overtime_hours REAL NOT NULL DEFAULT 0,
		overtime_amount REAL NOT NULL DEFAULT 0,
		net_salary REAL NOT NULL,
		payment_date TEXT,
		payment_method TEXT,
		status TEXT NOT NULL DEFAULT 'pending',
		notes TEXT,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		UNIQUE (employee_id, month, year),
		FOREIGN KEY (employee_id) REFERENCES employees(id)
	)`,
	`CREATE TABLE IF NOT EXISTS performance_reviews (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		employee_id INTEGER NOT NULL,
		reviewer_id INTEGER,
		review_period TEXT NOT NULL,
		review_date TEXT NOT NULL,
		overall_rating REAL,
		strengths TEXT,
		areas_for_improvement TEXT,
		goals TEXT,
		comments TEXT,
		status TEXT NOT NULL DEFAULT 'draft',
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		UNIQUE (employee_id, review_period),
		FOREIGN KEY (employee_id) REFERENCES employees(id),
		FOREIGN KEY (reviewer_id) REFERENCES employees(id)
	)`,
	`CREATE TABLE IF NOT EXISTS training_programs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		description TEXT,
		trainer TEXT,
		location TEXT,
		start_date TEXT NOT NULL,
		end_date TEXT NOT NULL,
		duration_hours INTEGER,
		capacity INTEGER NOT NULL,
		enrolled_count INTEGER NOT NULL DEFAULT 0,
		cost REAL,
		status TEXT NOT NULL DEFAULT 'scheduled',
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS training_enrollments (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		training_program_id INTEGER NOT NULL,
		employee_id INTEGER NOT NULL,
		enrollment_date TEXT NOT NULL,
		completion_status TEXT NOT NULL DEFAULT 'enrolled',
		completion_date TEXT,
		score REAL,
		feedback TEXT,
		certificate_issued INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		UNIQUE (training_program_id, employee_id),
		FOREIGN KEY (training_program_id) REFERENCES training_programs(id) ON DELETE CASCADE,
		FOREIGN KEY (employee_id) REFERENCES employees(id)
	)`,
	`CREATE TABLE IF NOT EXISTS notifications (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER NOT NULL,
		title TEXT NOT NULL,
		message TEXT NOT NULL,
		type TEXT,
		is_read INTEGER NOT NULL DEFAULT 0,
		link TEXT,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE
	)`,
	`CREATE TABLE IF NOT EXISTS activity_logs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER,
		action TEXT NOT NULL,
		entity_type TEXT,
		entity_id INTEGER,
		details TEXT,
		ip_address TEXT,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE SET NULL
	)`,
	`CREATE TABLE IF NOT EXISTS job_postings (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		title TEXT NOT NULL,
		department_id INTEGER,
		job_title_id INTEGER,
		description TEXT,
		requirements TEXT,
		vacancies INTEGER NOT NULL DEFAULT 1,
		salary_range TEXT,
		employment_type TEXT,
		location TEXT,
		status TEXT NOT NULL DEFAULT 'open',
		posted_date TEXT NOT NULL,
		closing_date TEXT,
		created_by INTEGER,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (department_id) REFERENCES departments(id) ON DELETE SET NULL,
		FOREIGN KEY (job_title_id) REFERENCES job_titles(id) ON DELETE SET NULL,
		FOREIGN KEY (created_by) REFERENCES users(id) ON DELETE SET NULL
	)`,
	`CREATE TABLE IF NOT EXISTS job_applications (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		job_posting_id INTEGER NOT NULL,
		applicant_name TEXT NOT NULL,
		email TEXT NOT NULL,
		phone TEXT,
		resume_file TEXT,
		cover_letter TEXT,
		experience_years INTEGER,
		education TEXT,
		status TEXT NOT NULL DEFAULT 'pending',
		interview_date TEXT,
		interview_notes TEXT,
		applied_date DATETIME DEFAULT CURRENT_TIMESTAMP,
		reviewed_by INTEGER,
		reviewed_date DATETIME,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		UNIQUE (job_posting_id, email),
		FOREIGN KEY (job_posting_id) REFERENCES job_postings(id) ON DELETE CASCADE,
		FOREIGN KEY (reviewed_by) REFERENCES users(id) ON DELETE SET NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_employees_department ON employees(department_id)`,
	`CREATE INDEX IF NOT EXISTS idx_employees_status ON employees(status)`,
	`CREATE INDEX IF NOT EXISTS idx_attendance_date ON attendance(date)`,
	`CREATE INDEX IF NOT EXISTS idx_leave_requests_employee ON leave_requests(employee_id)`,
	`CREATE INDEX IF NOT EXISTS idx_payroll_period ON payroll(year, month)`,
	`CREATE INDEX IF NOT EXISTS idx_notifications_user ON notifications(user_id, is_read)`,
	`CREATE INDEX IF NOT EXISTS idx_activity_logs_user ON activity_logs(user_id)`,
	`CREATE INDEX IF NOT EXISTS idx_job_applications_posting ON job_applications(job_posting_id, status)`,
}
