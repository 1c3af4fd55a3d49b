package model

// DefaultActivities seeds a user whose catalog is empty.
var DefaultActivities = []Activity{
	{Name: "Learn C Programming", NameKh: "រៀនភាសា C", Duration: 60},
	{Name: "Exercise", NameKh: "ហាត់ប្រាណ", Duration: 30},
	{Name: "Relax", NameKh: "សម្រាក", Duration: 20},
	{Name: "Post a Video", NameKh: "បង្ហោះវីដេអូ", Duration: 45},
	{Name: "Wash Dishes", NameKh: "លាងចាន", Duration: 15},
	{Name: "Mop the Floor", NameKh: "ជូតជាន់ផ្ទះ", Duration: 20},
	{Name: "Do Laundry", NameKh: "បោកខោអាវ", Duration: 30},
	{Name: "Learn from Udemy", NameKh: "រៀនពី Udemy", Duration: 60},
}

// DayLabel carries the bilingual weekday names, Monday first.
type DayLabel struct {
	En string `json:"en"`
	Kh string `json:"kh"`
}

var DaysOfWeek = []DayLabel{
	{En: "Monday", Kh: "ច័ន្ទ"},
	{En: "Tuesday", Kh: "អង្គារ"},
	{En: "Wednesday", Kh: "ពុធ"},
	{En: "Thursday", Kh: "ព្រហស្បតិ៍"},
	{En: "Friday", Kh: "សុក្រ"},
	{En: "Saturday", Kh: "សៅរ៍"},
	{En: "Sunday", Kh: "អាទិត្យ"},
}
