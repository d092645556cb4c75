package services

// CatalogService is one bookable salon service. The catalog is static: it
// changes a few times a year and ships with the binary.
type CatalogService struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Duration int     `json:"duration"` // minutes
	Price    float64 `json:"price"`    // Ksh
}

var Catalog = []CatalogService{
	{ID: "Gel+artwork", Name: "Gel + Artwork", Duration: 45, Price: 500},
	{ID: "Gel+artwork-classic", Name: "Gel + Artwork (Classic)", Duration: 60, Price: 300},
	{ID: "Acrylics", Name: "Acrylics", Duration: 90, Price: 1500},
	{ID: "Pedicure+gel", Name: "Pedicure + Gel", Duration: 120, Price: 800},
	{ID: "Gum-gel", Name: "Gum Gel", Duration: 30, Price: 800},
	{ID: "Gum-gel-extension", Name: "Gum Gel Extension", Duration: 45, Price: 1000},
	{ID: "Pedicure+tips", Name: "Pedicure + Tips", Duration: 90, Price: 1000},
	{ID: "Nail-builder", Name: "Nail Builder", Duration: 30, Price: 500},
	{ID: "Nail-removal", Name: "Nail Removal", Duration: 15, Price: 100},
}

// LookupService finds a catalog entry by id; ok is false for unknown ids.
func LookupService(id string) (CatalogService, bool) {
	for _, svc := range Catalog {
		if svc.ID == id {
			return svc, true
		}
	}
	return CatalogService{}, false
}

// TimeSlots are the bookable half-hour slots in display form.
var TimeSlots = []string{
	"9:00 AM", "9:30 AM", "10:00 AM", "10:30 AM", "11:00 AM", "11:30 AM",
	"12:00 PM", "12:30 PM", "1:00 PM", "1:30 PM", "2:00 PM", "2:30 PM",
	"3:00 PM", "3:30 PM", "4:00 PM", "4:30 PM", "5:00 PM", "5:30 PM",
}
