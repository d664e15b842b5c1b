package ledger

// Kind discriminates the two transaction tables
type Kind string

const (
	KindIncome Kind = "income"
	KindSpend  Kind = "spend"
)

// IsValid checks if the kind is income or spend
func (k Kind) IsValid() bool {
	return k == KindIncome || k == KindSpend
}

// String returns the string representation of Kind
func (k Kind) String() string {
	return string(k)
}
