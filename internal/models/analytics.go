package models

// Aggregate rows served by the analytics endpoints. The backend keys each
// bucket under "_id", Mongo aggregation style.

type UsageBucket struct {
	ActivityType string `json:"_id"`
	Count        int    `json:"count"`
}

type PopularSkill struct {
	Skill string `json:"_id"`
	Count int    `json:"count"`
}

type InstructorEarning struct {
	Instructor string  `json:"_id"`
	Total      float64 `json:"totalEarnings"`
}
