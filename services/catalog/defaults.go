// File: services/catalog/defaults.go
package catalog

import "hometeam/models"

// DefaultCategories is the seed list used when both the remote store and the
// local cache are empty. Order is the initial display order.
func DefaultCategories() []models.Category {
	return []models.Category{
		{ID: 1, Name: "Anxiety & Depression", Icon: "😌"},
		{ID: 2, Name: "Trauma & PTSD", Icon: "🌿"},
		{ID: 3, Name: "LGBTQ+ Affirming", Icon: "🌈"},
		{ID: 4, Name: "Couples Therapy", Icon: "💑"},
		{ID: 5, Name: "Substance Abuse", Icon: "🔄"},
		{ID: 6, Name: "Child & Adolescent", Icon: "🧒"},
		{ID: 7, Name: "Mindfulness & Meditation", Icon: "🧘"},
		{ID: 8, Name: "BIPOC-Centered Care", Icon: "✊"},
		{ID: 9, Name: "Grief & Loss", Icon: "🕊️"},
		{ID: 10, Name: "Eating Disorders", Icon: "🍃"},
	}
}

// DefaultPractitioners seeds the roster for first runs.
func DefaultPractitioners() []models.Practitioner {
	return []models.Practitioner{
		{
			ID:           1,
			Name:         "Dr. Sarah Kim",
			Credentials:  "PsyD, Licensed Clinical Psychologist",
			Title:        "Clinical Psychologist",
			Location:     "San Francisco, CA",
			Specialties:  []string{"Anxiety & Depression", "LGBTQ+ Affirming", "Trauma & PTSD"},
			Approaches:   []string{"CBT", "EMDR", "Humanistic"},
			Sports:       []string{"Basketball", "Soccer", "Track & Field"},
			SessionTypes: []string{"In-Person", "Virtual"},
			Bio:          "Dr. Kim specializes in helping individuals navigate anxiety, depression, and trauma with a warm, evidence-based approach. She is committed to creating a safe, affirming space for clients of all backgrounds and identities.",
			Offerings: []models.Offering{
				{Name: "Individual Therapy (50 min)", Price: 175, Duration: "50 min"},
				{Name: "Initial Consultation (30 min)", Price: 0, Duration: "30 min"},
				{Name: "EMDR Session (80 min)", Price: 225, Duration: "80 min"},
			},
			StartingPrice: 175,
			Rating:        4.9,
			ReviewCount:   48,
			Featured:      true,
			Verified:      true,
		},
		{
			ID:           2,
			Name:         "Marcus Johnson, LCSW",
			Credentials:  "LCSW, Certified Trauma Professional",
			Title:        "Licensed Clinical Social Worker",
			Location:     "Brooklyn, NY",
			Specialties:  []string{"Trauma & PTSD", "BIPOC-Centered Care", "Substance Abuse"},
			Approaches:   []string{"Somatic", "Psychodynamic", "CBT"},
			Sports:       []string{"Football", "Basketball", "Boxing"},
			SessionTypes: []string{"In-Person", "Virtual"},
			Bio:          "Marcus brings over 12 years of experience working with individuals who have experienced trauma, systemic oppression, and substance use challenges. His approach centers cultural identity as a strength in the healing process.",
			Offerings: []models.Offering{
				{Name: "Individual Therapy (50 min)", Price: 150, Duration: "50 min"},
				{Name: "Group Therapy (90 min)", Price: 60, Duration: "90 min"},
				{Name: "Free Consultation (20 min)", Price: 0, Duration: "20 min"},
			},
			StartingPrice: 60,
			Rating:        4.8,
			ReviewCount:   36,
			Featured:      true,
			Verified:      true,
		},
		{
			ID:           3,
			Name:         "Elena Rodriguez, LMFT",
			Credentials:  "LMFT, Certified Gottman Therapist",
			Title:        "Licensed Marriage & Family Therapist",
			Location:     "Austin, TX",
			Specialties:  []string{"Couples Therapy", "Anxiety & Depression"},
			Approaches:   []string{"Gottman Method", "Humanistic", "CBT"},
			SessionTypes: []string{"Virtual"},
			Bio:          "Elena helps couples and individuals build stronger relationships and communication patterns. Her practice blends the Gottman Method with a warm, practical style focused on real-world change.",
			Offerings: []models.Offering{
				{Name: "Couples Session (80 min)", Price: 200, Duration: "80 min"},
				{Name: "Individual Therapy (50 min)", Price: 140, Duration: "50 min"},
			},
			StartingPrice: 140,
			Rating:        4.7,
			ReviewCount:   29,
			Featured:      false,
			Verified:      true,
		},
		{
			ID:           4,
			Name:         "Dr. Amara Okafor",
			Credentials:  "PhD, Licensed Psychologist",
			Title:        "Psychologist",
			Location:     "Chicago, IL",
			Specialties:  []string{"Grief & Loss", "Mindfulness & Meditation", "BIPOC-Centered Care"},
			Approaches:   []string{"Mindfulness", "Psychodynamic", "Holistic"},
			Sports:       []string{"Tennis", "Swimming"},
			SessionTypes: []string{"In-Person"},
			Bio:          "Dr. Okafor supports clients moving through grief, loss, and major life transitions. She weaves mindfulness practice into evidence-based care and has a decade of experience with culturally responsive therapy.",
			Offerings: []models.Offering{
				{Name: "Individual Therapy (50 min)", Price: 165, Duration: "50 min"},
				{Name: "Mindfulness Group (60 min)", Price: 45, Duration: "60 min"},
			},
			StartingPrice: 45,
			Rating:        4.9,
			ReviewCount:   41,
			Featured:      false,
			Verified:      false,
		},
	}
}
