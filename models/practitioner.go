package models

// Offering is a priced, named service variant belonging to a practitioner.
type Offering struct {
	Name     string  `bson:"name" json:"name"`
	Price    float64 `bson:"price" json:"price"` // >= 0; 0 marks a free consultation placeholder
	Duration string  `bson:"duration" json:"duration"`
}

// PractitionerReview is a single customer review.
type PractitionerReview struct {
	Author string `bson:"author" json:"author"`
	Stars  int    `bson:"stars" json:"stars"` // 1..5
	Text   string `bson:"text" json:"text"`
}

// Practitioner is a service-provider entity listed in the marketplace.
type Practitioner struct {
	ID            int                  `bson:"id" json:"id"`
	Name          string               `bson:"name" json:"name"`
	Credentials   string               `bson:"credentials" json:"credentials"`
	Title         string               `bson:"title" json:"title"`
	Location      string               `bson:"location" json:"location"`
	Specialties   []string             `bson:"specialties" json:"specialties"` // category names
	Approaches    []string             `bson:"approaches" json:"approaches"`
	Sports        []string             `bson:"sports,omitempty" json:"sports,omitempty"`
	SessionTypes  []string             `bson:"sessionTypes" json:"sessionTypes"` // "In-Person" | "Virtual"
	Bio           string               `bson:"bio" json:"bio"`
	Offerings     []Offering           `bson:"offerings" json:"offerings"`
	StartingPrice float64              `bson:"startingPrice" json:"startingPrice"`
	Rating        float64              `bson:"rating,omitempty" json:"rating,omitempty"` // 0..5
	ReviewCount   int                  `bson:"reviewCount,omitempty" json:"reviewCount,omitempty"`
	Reviews       []PractitionerReview `bson:"reviews,omitempty" json:"reviews,omitempty"`
	Featured      bool                 `bson:"featured" json:"featured"`
	Verified      bool                 `bson:"verified" json:"verified"`
}

// MinOfferingPrice returns the lowest non-placeholder offering price, or 0
// when every offering is free or the list is empty. The stored StartingPrice
// can drift from this value; it is recomputed on every write (see catalog
// service) rather than trusted.
func (p Practitioner) MinOfferingPrice() float64 {
	var min float64
	found := false
	for _, o := range p.Offerings {
		if o.Price <= 0 {
			continue
		}
		if !found || o.Price < min {
			min = o.Price
			found = true
		}
	}
	if !found {
		return 0
	}
	return min
}

// RankingSummary is the projected view of a practitioner sent to the ranking
// model. Only fields relevant to ranking are carried, never the full entity.
type RankingSummary struct {
	ID            int      `json:"id"`
	Name          string   `json:"name"`
	Credentials   string   `json:"credentials"`
	Title         string   `json:"title"`
	Location      string   `json:"location"`
	Specialties   []string `json:"specialties"`
	Approaches    []string `json:"approaches"`
	Sports        []string `json:"sports,omitempty"`
	SessionTypes  []string `json:"sessionTypes"`
	Bio           string   `json:"bio"`
	StartingPrice int      `json:"startingPrice"`
	Rating        float64  `json:"rating"`
	ReviewCount   int      `json:"reviewCount"`
}
