package scheduling

// Filter is a model for a rest api filter
type Filter struct {
	Field    string
	Value    interface{}
	Operator string
}
