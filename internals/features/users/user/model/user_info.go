package model

// Typed shapes for the JSONB info documents. These mirror the registrar's
// enrollment form; everything is optional except what the form requires.

type StudentInfo struct {
	StudentNumber      string              `json:"student_number,omitempty"`
	ProgramCode        string              `json:"program_code,omitempty"`
	YearEnrolled       string              `json:"year_enrolled,omitempty"`
	YearLevel          int                 `json:"year_level,omitempty"`
	DemographicProfile *DemographicProfile `json:"demographic_profile,omitempty"`
}

type DemographicProfile struct {
	Gender             string               `json:"gender,omitempty"`
	DateOfBirth        string               `json:"date_of_birth,omitempty"`
	CivilStatus        string               `json:"civil_status,omitempty"`
	PlaceOfBirth       string               `json:"place_of_birth,omitempty"`
	Religion           string               `json:"religion,omitempty"`
	Parents            []ParentInfo         `json:"parents,omitempty"`
	Address            []AddressInfo        `json:"address,omitempty"`
	ContactInformation []ContactInformation `json:"contact_information,omitempty"`
	SupportingStudies  string               `json:"supporting_studies,omitempty"`
	IsEmployed         bool                 `json:"is_employed,omitempty"`
	OtherInformation   string               `json:"other_information,omitempty"`
}

type ParentInfo struct {
	Role string `json:"role,omitempty"` // father / mother / guardian
	Name string `json:"name,omitempty"`
}

type AddressInfo struct {
	ProvinceAddress string `json:"province_address,omitempty"`
	CityAddress     string `json:"city_address,omitempty"`
}

type ContactInformation struct {
	EmailAddress   string `json:"email_address,omitempty"`
	MobileNumber   string `json:"mobile_number,omitempty"`
	LandLineNumber string `json:"land_line_number,omitempty"`
}

type TeacherInfo struct {
	Department string `json:"department,omitempty"`
}
