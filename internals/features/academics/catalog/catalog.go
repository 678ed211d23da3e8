package catalog

// Static subject catalog: program + semester → subject list. Lookup
// only; ingestion does not validate against it.

type Subject struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

var subjects = map[string]map[int][]Subject{
	"BCA": {
		1: {
			{Code: "BCA101", Name: "Programming Fundamentals"},
			{Code: "BCA102", Name: "Digital Logic"},
			{Code: "BCA103", Name: "Mathematics I"},
		},
		2: {
			{Code: "BCA201", Name: "Data Structures"},
			{Code: "BCA202", Name: "Database Systems"},
			{Code: "BCA203", Name: "Mathematics II"},
		},
		3: {
			{Code: "BCA301", Name: "Operating Systems"},
			{Code: "BCA302", Name: "Computer Networks"},
			{Code: "BCA303", Name: "Web Technologies"},
		},
	},
	"MCA": {
		1: {
			{Code: "MCA101", Name: "Advanced Programming"},
			{Code: "MCA102", Name: "Discrete Mathematics"},
		},
		2: {
			{Code: "MCA201", Name: "Algorithms"},
			{Code: "MCA202", Name: "Software Engineering"},
		},
	},
	"BSC": {
		1: {
			{Code: "BSC101", Name: "Physics I"},
			{Code: "BSC102", Name: "Chemistry I"},
		},
		2: {
			{Code: "BSC201", Name: "Physics II"},
			{Code: "BSC202", Name: "Chemistry II"},
		},
	},
}

// Lookup returns the subject list for a program and semester.
func Lookup(program string, semester int) ([]Subject, bool) {
	semesters, ok := subjects[program]
	if !ok {
		return nil, false
	}
	list, ok := semesters[semester]
	return list, ok
}
