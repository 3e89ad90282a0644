package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/noah-isme/school-backoffice-api/internal/models"
	"github.com/noah-isme/school-backoffice-api/internal/repository"
	appErrors "github.com/noah-isme/school-backoffice-api/pkg/errors"
	"github.com/noah-isme/school-backoffice-api/pkg/export"
)

// BankAccountSchema declares school bank accounts with a single default account.
func BankAccountSchema() Schema[models.BankAccount] {
	return Schema[models.BankAccount]{
		Collection:   CollectionBankAccounts,
		Label:        "bank account",
		Path:         "bank-accounts",
		Unique:       []UniqueKey{{Fields: []string{"accountNumber"}, CaseInsensitive: true, Message: "account number already exists"}},
		Filters:      []Filter{{Param: "isDefault", Field: "isDefault", Kind: FilterBool}},
		Sort:         newestFirst,
		Status:       true,
		SoftDelete:   true,
		HideInactive: true,
		Singleton:    &Singleton{Field: "isDefault", Route: "set-default"},
		Columns: []export.Column{
			{Key: "bankName", Title: "Bank"},
			{Key: "accountName", Title: "Account Name"},
			{Key: "accountNumber", Title: "Account Number"},
			{Key: "branch", Title: "Branch"},
			{Key: "openingBalance", Title: "Opening Balance"},
			{Key: "isDefault", Title: "Default"},
			{Key: "isActive", Title: "Active"},
		},
	}
}

// FeeTypeSchema declares fee heads priced per class and session.
func FeeTypeSchema() Schema[models.FeeType] {
	return Schema[models.FeeType]{
		Collection: CollectionFeeTypes,
		Label:      "fee type",
		Path:       "fee-types",
		Unique: []UniqueKey{{
			Fields:          []string{"name", "classId", "sessionId"},
			CaseInsensitive: true,
			Message:         "fee type already exists for this class and session",
		}},
		References:   []Reference{classRef, sessionRef},
		Filters:      []Filter{classFilter, sessionFilter},
		Sort:         byName,
		Status:       true,
		SoftDelete:   true,
		HideInactive: true,
		Columns: []export.Column{
			{Key: "name", Title: "Name"},
			{Key: "className", Title: "Class"},
			{Key: "sessionName", Title: "Session"},
			{Key: "amount", Title: "Amount"},
			{Key: "isActive", Title: "Active"},
		},
	}
}

// DiscountTypeSchema declares named discount categories.
func DiscountTypeSchema() Schema[models.DiscountType] {
	return Schema[models.DiscountType]{
		Collection:   CollectionDiscountTypes,
		Label:        "discount type",
		Path:         "discount-types",
		Unique:       []UniqueKey{{Fields: []string{"name"}, CaseInsensitive: true, Message: "discount type already exists"}},
		Sort:         byName,
		Status:       true,
		SoftDelete:   true,
		HideInactive: true,
		Columns: []export.Column{
			{Key: "name", Title: "Name"},
			{Key: "description", Title: "Description"},
			{Key: "isActive", Title: "Active"},
		},
	}
}

// DiscountSchema declares discounts on a fee type for a class, optionally narrowed to a batch.
func DiscountSchema() Schema[models.Discount] {
	return Schema[models.Discount]{
		Collection: CollectionDiscounts,
		Label:      "discount",
		Path:       "discounts",
		Unique: []UniqueKey{{
			Fields:  []string{"sessionId", "classId", "batchId", "feeTypeId", "discountTypeId"},
			Message: "discount already exists for this session, class, batch, fee type and discount type",
		}},
		References: []Reference{
			sessionRef,
			classRef,
			batchRef,
			{Field: "feeTypeId", Collection: CollectionFeeTypes, Label: "fee type", Display: "name", As: "feeTypeName", ActiveOnly: true},
			{Field: "discountTypeId", Collection: CollectionDiscountTypes, Label: "discount type", Display: "name", As: "discountTypeName", ActiveOnly: true},
		},
		Filters: []Filter{
			sessionFilter,
			classFilter,
			batchFilter,
			{Param: "feeTypeId", Field: "feeTypeId", Kind: FilterID},
			{Param: "discountTypeId", Field: "discountTypeId", Kind: FilterID},
		},
		Sort: newestFirst,
		Columns: []export.Column{
			{Key: "sessionName", Title: "Session"},
			{Key: "className", Title: "Class"},
			{Key: "batchName", Title: "Batch"},
			{Key: "feeTypeName", Title: "Fee Type"},
			{Key: "discountTypeName", Title: "Discount Type"},
			{Key: "percentage", Title: "Percentage"},
			{Key: "amount", Title: "Amount"},
		},
		Verify: func(_ context.Context, d *models.Discount, lookup Lookup) error {
			if d.BatchID != nil {
				if err := belongsTo(lookup, CollectionBatches, *d.BatchID, "classId", d.ClassID, "batch does not belong to the selected class"); err != nil {
					return err
				}
			}
			feeType, err := lookup(CollectionFeeTypes, d.FeeTypeID)
			if err != nil {
				return err
			}
			if feeType.String("classId") != d.ClassID || feeType.String("sessionId") != d.SessionID {
				return appErrors.Clone(appErrors.ErrValidation, "fee type does not belong to the selected class and session")
			}
			return nil
		},
	}
}

// FeeCollectionSchema declares fee payments received from students.
func FeeCollectionSchema() Schema[models.FeeCollection] {
	return Schema[models.FeeCollection]{
		Collection: CollectionFeeCollections,
		Label:      "fee collection",
		Path:       "fee-collections",
		Unique:     []UniqueKey{{Fields: []string{"receiptNumber"}, CaseInsensitive: true, Message: "receipt number already exists"}},
		References: []Reference{
			{Field: "studentId", Collection: CollectionStudents, Label: "student", Display: "name", As: "studentName", ActiveOnly: true},
			{Field: "feeTypeId", Collection: CollectionFeeTypes, Label: "fee type", Display: "name", As: "feeTypeName", ActiveOnly: true},
			{Field: "bankAccountId", Collection: CollectionBankAccounts, Label: "bank account", Display: "bankName", As: "bankName", ActiveOnly: true},
		},
		Filters: []Filter{
			{Param: "studentId", Field: "studentId", Kind: FilterID},
			{Param: "feeTypeId", Field: "feeTypeId", Kind: FilterID},
			{Param: "bankAccountId", Field: "bankAccountId", Kind: FilterID},
			{Param: "paymentMethod", Field: "paymentMethod"},
		},
		Sort: []repository.Sort{{Field: "paymentDate", Desc: true}, {Field: repository.FieldCreatedAt, Desc: true}},
		Columns: []export.Column{
			{Key: "receiptNumber", Title: "Receipt"},
			{Key: "paymentDate", Title: "Date"},
			{Key: "studentName", Title: "Student"},
			{Key: "feeTypeName", Title: "Fee Type"},
			{Key: "amount", Title: "Amount"},
			{Key: "paymentMethod", Title: "Method"},
			{Key: "bankName", Title: "Bank"},
			{Key: "note", Title: "Note"},
		},
		Prepare: func(f *models.FeeCollection, creating bool) {
			if f.PaymentDate.IsZero() {
				f.PaymentDate = models.Today()
			}
			if strings.TrimSpace(f.PaymentMethod) == "" {
				f.PaymentMethod = models.PaymentCash
			}
			if creating && strings.TrimSpace(f.ReceiptNumber) == "" {
				f.ReceiptNumber = receiptNumber(f.PaymentDate)
			}
		},
		Verify: func(_ context.Context, f *models.FeeCollection, _ Lookup) error {
			if f.PaymentMethod == models.PaymentBank && f.BankAccountID == nil {
				return appErrors.Clone(appErrors.ErrValidation, "bankAccountId is required for bank payments")
			}
			return nil
		},
	}
}

// receiptNumber renders RCP-YYYYMMDD-XXXXXXXX.
func receiptNumber(day models.Date) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return "RCP-" + strings.ReplaceAll(day.String(), "-", "") + "-" + suffix
}
