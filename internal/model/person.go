package model

// Person is anyone or anything with a MyAnimeList page: characters, voice actors and staff
type Person struct {
	ID    int     `json:"id" validate:"gte=0"`
	Name  string  `json:"name"`
	Image *string `json:"image"`
}

type CastMember struct {
	Character   Person       `json:"character"`
	Role        CastRole     `json:"role" validate:"oneof=Main Supporting"`
	VoiceActors []VoiceActor `json:"voice_actors" validate:"required,dive"`
}

type VoiceActor struct {
	Person   Person `json:"person"`
	Language string `json:"language"`
}

// StaffCredit is one role of one person. A person with several positions gets one credit per position.
type StaffCredit struct {
	Person Person `json:"person"`
	Role   string `json:"role"`
}
