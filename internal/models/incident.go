package models

// IncidentStatus - статус инцидента, выставляется только сервером
type IncidentStatus string

const (
	IncidentPending    IncidentStatus = "PENDING"
	IncidentInProgress IncidentStatus = "IN_PROGRESS"
	IncidentResolved   IncidentStatus = "RESOLVED"
	IncidentClosed     IncidentStatus = "CLOSED"
)

// IncidentType - категория инцидента, выбираемая при подаче
type IncidentType string

const (
	IncidentTheft           IncidentType = "theft"
	IncidentHarassment      IncidentType = "harassment"
	IncidentAccident        IncidentType = "accident"
	IncidentFire            IncidentType = "fire"
	IncidentVandalism       IncidentType = "vandalism"
	IncidentMedical         IncidentType = "medical"
	IncidentNaturalDisaster IncidentType = "natural_disaster"
	IncidentLostItem        IncidentType = "lost_item"
	IncidentStolenItem      IncidentType = "stolen_item"
	IncidentOther           IncidentType = "other"
)

// IncidentTypes перечисляет все допустимые категории в порядке отображения
var IncidentTypes = []IncidentType{
	IncidentTheft,
	IncidentHarassment,
	IncidentAccident,
	IncidentFire,
	IncidentVandalism,
	IncidentMedical,
	IncidentNaturalDisaster,
	IncidentLostItem,
	IncidentStolenItem,
	IncidentOther,
}

type Incident struct {
	ID           int64          `json:"id"`
	Title        string         `json:"title"`
	Description  string         `json:"description"`
	IncidentType IncidentType   `json:"incident_type"`
	Status       IncidentStatus `json:"status"`
	Location     string         `json:"location"`
	MediaFiles   []string       `json:"media_files"`
	ReportedBy   UserProfile    `json:"reported_by"`
	Campus       Campus         `json:"campus"`
	CreatedAt    Timestamp      `json:"created_at"`
	UpdatedAt    Timestamp      `json:"updated_at"`
}

// MediaFile - вложение, прикладываемое к новому инциденту
type MediaFile struct {
	Name    string `validate:"required"`
	Content []byte
}

// IncidentReport - данные формы подачи инцидента
type IncidentReport struct {
	Title        string       `json:"title" validate:"required"`
	Description  string       `json:"description" validate:"required"`
	IncidentType IncidentType `json:"incident_type" validate:"required,oneof=theft harassment accident fire vandalism medical natural_disaster lost_item stolen_item other"`
	Location     string       `json:"location,omitempty"`
	MediaFiles   []MediaFile  `json:"-" validate:"dive"`
}
