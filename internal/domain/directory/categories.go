package directory

// Categories lists the specialties the catalog is browsed by. The sentinel
// "all" entry matches every record.
var Categories = []string{
	CategoryAll,
	"Cardiology",
	"Dermatology",
	"Pediatrics",
	"Neurology",
	"Psychiatry",
	"Orthopedics",
	"General Practice",
	"Endocrinology",
	"Gastroenterology",
	"Oncology",
	"Radiology",
}
