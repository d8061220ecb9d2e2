// Package view renders the application's screens. Templates are kept as Go
// string constants compiled once at startup, sharing a FuncMap of the
// formatting helpers.
package view

import (
	"html/template"
	"time"

	"github.com/bloodlink-bd/bloodlink-web/internal/domain/entity"
)

// Templates compiles every page template for gin's HTML renderer.
func Templates() *template.Template {
	t := template.New("").Funcs(funcMap())
	for name, src := range pageSources {
		template.Must(t.New(name).Parse(src))
	}
	return t
}

func funcMap() template.FuncMap {
	return template.FuncMap{
		"due":         func(date string) DueInfo { return Due(date, time.Now()) },
		"time12":      FormatTime12,
		"dateShort":   FormatDateShort,
		"dateTime":    FormatDateTime,
		"statusBadge": StatusBadge,
		"location":    Location,
		"add":         func(a, b int) int { return a + b },
		"districts":   func() []string { return Districts },
		"upazilas":    func(district string) []string { return Upazilas[district] },
		"upazilaField": func(name, districtField, district, upazila string) UpazilaField {
			return UpazilaField{Name: name, DistrictField: districtField, District: district, Upazila: upazila}
		},
		"actions": func(r entity.DonationRequest, u *entity.User) entity.RequestActions {
			return entity.ActionsFor(&r, u)
		},
	}
}
