package event

type Type string

const (
	TypeConference Type = "conference"
	TypeWedding    Type = "wedding"
	TypeFestival   Type = "festival"
	TypeCorporate  Type = "corporate"
	TypeConcert    Type = "concert"
	TypeWorkshop   Type = "workshop"
	TypeOther      Type = "other"
)

func (t Type) IsValid() bool {
	switch t {
	case TypeConference, TypeWedding, TypeFestival, TypeCorporate, TypeConcert, TypeWorkshop, TypeOther:
		return true
	default:
		return false
	}
}

func (t Type) String() string { return string(t) }

type Status string

const (
	StatusPlanning  Status = "planning"
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusPlanning, StatusActive, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

func (s Status) String() string { return string(s) }
