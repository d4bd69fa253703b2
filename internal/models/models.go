package models

// LineItem is one row of an in-progress or submitted order. Identity is the
// product name: adding the same product again merges quantities instead of
// duplicating the row.
type LineItem struct {
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	UnitPrice int    `json:"price"` // rupees per unit
}

// Subtotal returns quantity x unit price for this line.
func (li LineItem) Subtotal() int {
	return li.Quantity * li.UnitPrice
}

const (
	OrderPending   = "pending"
	OrderCompleted = "completed"
)

type Order struct {
	ID           int64      `json:"id"` // unix milliseconds at submission
	CustomerName string     `json:"customerName"`
	Items        []LineItem `json:"items"`
	Total        int        `json:"total"`
	Status       string     `json:"status"` // "pending" or "completed"
	CreatedAt    string     `json:"date"`   // display-formatted submission time
}

type Message struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Subject   string `json:"subject"`
	Body      string `json:"message"`
	Read      bool   `json:"read"`
	CreatedAt string `json:"date"`
}

type Rating struct {
	ID           int64  `json:"id"`
	ProductName  string `json:"productName"`
	ReviewerName string `json:"name"`
	Stars        int    `json:"rating"` // 1..5
	Review       string `json:"review,omitempty"`
	CreatedAt    string `json:"date"`
}

// TimeFormat is the display layout used for CreatedAt fields.
const TimeFormat = "2/1/2006, 3:04:05 PM"
