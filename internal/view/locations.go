package view

// Districts lists the selectable districts in form order.
var Districts = []string{
	"Dhaka", "Chattogram", "Rajshahi", "Khulna",
	"Barishal", "Sylhet", "Rangpur", "Mymensingh",
}

// UpazilaField parameterizes the shared upazila select partial: the select's
// form name, the name of the district select it follows, and the currently
// saved values.
type UpazilaField struct {
	Name          string
	DistrictField string
	District      string
	Upazila       string
}

// Upazilas maps a district to its selectable upazilas.
var Upazilas = map[string][]string{
	"Dhaka":      {"Dhanmondi", "Mirpur", "Uttara", "Gulshan", "Mohammadpur"},
	"Chattogram": {"Pahartali", "Kotwali", "Panchlaish", "Halishahar"},
	"Rajshahi":   {"Boalia", "Motihar", "Rajpara"},
	"Khulna":     {"Sonadanga", "Khalishpur", "Daulatpur"},
	"Barishal":   {"Kotwali", "Bakerganj"},
	"Sylhet":     {"Beanibazar", "Golapganj", "Zakiganj"},
	"Rangpur":    {"Pirgachha", "Mithapukur"},
	"Mymensingh": {"Muktagacha", "Trishal"},
}
