package currency

// ConvertRequest is the body of POST /api/currency/convert.
type ConvertRequest struct {
	Amount float64 `json:"amount" validate:"required,gt=0"`
	From   string  `json:"from" validate:"required,len=3,alpha"`
	To     string  `json:"to" validate:"required,len=3,alpha"`
}
