package models

// BankAccount receives fee payments. At most one account is the default.
type BankAccount struct {
	Meta
	Status
	BankName       string `json:"bankName" validate:"required,max=150"`
	AccountName    string `json:"accountName" validate:"required,max=150"`
	AccountNumber  string `json:"accountNumber" validate:"required,max=50"`
	Branch         string `json:"branch" validate:"max=150"`
	OpeningBalance Money  `json:"openingBalance"`
	IsDefault      bool   `json:"isDefault"`
}

// FeeType is a chargeable fee for a class in a session.
type FeeType struct {
	Meta
	Status
	Name        string `json:"name" validate:"required,max=150"`
	ClassID     string `json:"classId" validate:"required"`
	ClassName   string `json:"className,omitempty"`
	SessionID   string `json:"sessionId" validate:"required"`
	SessionName string `json:"sessionName,omitempty"`
	Amount      Money  `json:"amount"`
	Description string `json:"description"`
}

// DiscountType names a kind of discount such as "Sibling".
type DiscountType struct {
	Meta
	Status
	Name        string `json:"name" validate:"required,max=150"`
	Description string `json:"description"`
}

// Discount applies a discount type to a fee for a class, optionally narrowed to a batch.
type Discount struct {
	Meta
	SessionID        string  `json:"sessionId" validate:"required"`
	SessionName      string  `json:"sessionName,omitempty"`
	ClassID          string  `json:"classId" validate:"required"`
	ClassName        string  `json:"className,omitempty"`
	BatchID          *string `json:"batchId"`
	BatchName        string  `json:"batchName,omitempty"`
	FeeTypeID        string  `json:"feeTypeId" validate:"required"`
	FeeTypeName      string  `json:"feeTypeName,omitempty"`
	DiscountTypeID   string  `json:"discountTypeId" validate:"required"`
	DiscountTypeName string  `json:"discountTypeName,omitempty"`
	Percentage       Number  `json:"percentage" validate:"min=0,max=100"`
	Amount           Money   `json:"amount"`
}

// Payment methods accepted on fee collections.
const (
	PaymentCash   = "cash"
	PaymentBank   = "bank"
	PaymentMobile = "mobile"
)

// FeeCollection is a received payment.
type FeeCollection struct {
	Meta
	StudentID     string  `json:"studentId" validate:"required"`
	StudentName   string  `json:"studentName,omitempty"`
	FeeTypeID     string  `json:"feeTypeId" validate:"required"`
	FeeTypeName   string  `json:"feeTypeName,omitempty"`
	BankAccountID *string `json:"bankAccountId"`
	BankName      string  `json:"bankName,omitempty"`
	Amount        Money   `json:"amount" validate:"gt=0"`
	PaymentDate   Date    `json:"paymentDate"`
	PaymentMethod string  `json:"paymentMethod" validate:"omitempty,oneof=cash bank mobile"`
	ReceiptNumber string  `json:"receiptNumber" validate:"max=50"`
	Note          string  `json:"note"`
}
