package domain

import "time"

// Role identifies who authored a chat message.
type Role string

const (
	RoleUser Role = "user"
	RoleAI   Role = "ai"
)

// Message is one entry in a conversation log.
type Message struct {
	Role      Role      `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// Conversation is the persisted snapshot of one chat session. The whole
// message log is written on every exchange, keyed on SessionID, so a missed
// intermediate write is healed by the next one.
type Conversation struct {
	SessionID string    `json:"session_id"`
	Messages  []Message `json:"messages"`
	Language  string    `json:"language"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Severity of a detected crop disease.
type Severity string

const (
	SeverityLow      Severity = "Low"
	SeverityModerate Severity = "Moderate"
	SeverityHigh     Severity = "High"
)

// Treatment groups recommended remedies by approach.
type Treatment struct {
	Organic  []string `json:"organic"`
	Chemical []string `json:"chemical"`
}

// DiseaseReport is the structured payload the model is asked to produce for a
// crop photo.
type DiseaseReport struct {
	DiseaseName string    `json:"disease_name"`
	Confidence  float64   `json:"confidence"`
	CropType    string    `json:"crop_type"`
	Severity    Severity  `json:"severity"`
	Symptoms    []string  `json:"symptoms"`
	Treatment   Treatment `json:"treatment"`
	Prevention  []string  `json:"prevention"`
}

// DiseaseScan is a persisted analysis result. Scans are insert-only; they are
// never updated or deleted.
type DiseaseScan struct {
	ID        int64         `json:"id"`
	ImageURL  string        `json:"image_url"`
	Report    DiseaseReport `json:"report"`
	CreatedAt time.Time     `json:"created_at"`
}

// MarketPrice is one mandi price record. Rows are populated by an external
// process; this system only reads them.
type MarketPrice struct {
	ID                    int64     `json:"id"`
	CropName              string    `json:"crop_name"`
	MandiName             string    `json:"mandi_name"`
	District              string    `json:"district"`
	PricePerQuintal       float64   `json:"price_per_quintal"`
	PriceChangePercentage float64   `json:"price_change_percentage"`
	CreatedAt             time.Time `json:"created_at"`
}

// ForecastDay is one entry of the weather outlook.
type ForecastDay struct {
	Day       string  `json:"day"`
	Temp      float64 `json:"temp"`
	Condition string  `json:"condition"`
	Rainfall  float64 `json:"rainfall"`
}

// Weather is the current-conditions snapshot served by the weather endpoint.
type Weather struct {
	Location    string        `json:"location"`
	Temperature float64       `json:"temperature"`
	Condition   string        `json:"condition"`
	Humidity    float64       `json:"humidity"`
	Rainfall    float64       `json:"rainfall"`
	Forecast    []ForecastDay `json:"forecast"`
}
