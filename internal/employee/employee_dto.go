package employee

type SearchEmployeesRequest struct {
	Search      string   `form:"search" binding:"omitempty,max=100"`
	Departments []string `form:"department" binding:"omitempty,dive,max=100"`
	Codes       []string `form:"code" binding:"omitempty,dive,max=50"`
}

type EmployeeOptionResponse struct {
	Code       string `json:"employee_code"`
	Name       string `json:"employee_name"`
	EmployeeID int64  `json:"employee_id"`
	Department string `json:"department"`
	JobTitle   string `json:"job_title"`
}

func (r SearchEmployeesRequest) Filter() Filter {
	return Filter{
		Codes:       r.Codes,
		Departments: r.Departments,
		SearchTerm:  r.Search,
	}
}
