package employee

// Employee mirrors one row of the warehouse employee_details table.
// Date columns are stored by the warehouse as display strings.
type Employee struct {
	Code          string  `gorm:"column:employee_code;primaryKey" json:"employee_code"`
	WarehouseID   int64   `gorm:"column:emp_id" json:"employee_id"`
	Name          string  `gorm:"column:employee_name" json:"employee_name"`
	Department    string  `gorm:"column:department" json:"department"`
	Designation   string  `gorm:"column:designation" json:"job_title"`
	BranchName    string  `gorm:"column:branch_name" json:"branch_name"`
	Nationality   string  `gorm:"column:nationality" json:"nationality"`
	BirthDate     string  `gorm:"column:birth_date;type:text" json:"birth_date"`
	Gender        string  `gorm:"column:gender" json:"gender"`
	MaritalStatus string  `gorm:"column:marital_status" json:"marital_status"`
	BloodGroup    string  `gorm:"column:blood_group" json:"blood_group"`
	DateOfJoining string  `gorm:"column:doj;type:text" json:"date_of_joining"`
	Email         string  `gorm:"column:email_id" json:"email"`
	MobileNo      string  `gorm:"column:mobile_no" json:"mobile_no"`
	Address1      string  `gorm:"column:address1" json:"address1"`
	Address2      string  `gorm:"column:address2" json:"address2"`
	Address3      string  `gorm:"column:address3" json:"address3"`
	Address4      string  `gorm:"column:address4" json:"address4"`
	LeavingDate   *string `gorm:"column:leaving_date;type:text" json:"-"`
}

func (Employee) TableName() string {
	return "employee_details"
}

// Filter narrows the active-employee picker. Empty fields do not filter.
type Filter struct {
	Codes       []string
	Departments []string
	SearchTerm  string
}
