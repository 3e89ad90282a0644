package service

import (
	"context"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/school-backoffice-api/internal/models"
	appErrors "github.com/noah-isme/school-backoffice-api/pkg/errors"
)

type financeFixture struct {
	class   *models.Class
	session *models.Session
	student *models.Student
	feeType *models.FeeType
}

func seedFinance(t *testing.T, res *Resources) financeFixture {
	t.Helper()
	ctx := context.Background()
	class := mustClass(t, res, "Six")
	session := mustSession(t, res, "2024", "2024-01-01", "2024-12-31", true)
	student, err := res.Students.Create(ctx, doc{"name": "Rahim", "rollNumber": "1", "classId": class.ID, "sessionId": session.ID})
	require.NoError(t, err)
	feeType, err := res.FeeTypes.Create(ctx, doc{"name": "Tuition", "classId": class.ID, "sessionId": session.ID, "amount": "1500.50"})
	require.NoError(t, err)
	return financeFixture{class: class, session: session, student: student, feeType: feeType}
}

var receiptPattern = regexp.MustCompile(`^RCP-\d{8}-[0-9A-F]{8}$`)

func TestFeeCollectionDefaults(t *testing.T) {
	ctx := context.Background()
	res, _ := newTestResources(t)
	fx := seedFinance(t, res)

	payment, err := res.FeeCollections.Create(ctx, doc{"studentId": fx.student.ID, "feeTypeId": fx.feeType.ID, "amount": 1500.5})
	require.NoError(t, err)
	assert.Regexp(t, receiptPattern, payment.ReceiptNumber)
	assert.Equal(t, models.PaymentCash, payment.PaymentMethod)
	assert.False(t, payment.PaymentDate.IsZero())
	assert.Equal(t, "Rahim", payment.StudentName)
	assert.Equal(t, "Tuition", payment.FeeTypeName)

	_, err = res.FeeCollections.Create(ctx, doc{
		"studentId": fx.student.ID, "feeTypeId": fx.feeType.ID, "amount": 10,
		"receiptNumber": payment.ReceiptNumber,
	})
	assert.ErrorIs(t, err, appErrors.ErrDuplicate)

	updated, err := res.FeeCollections.Update(ctx, payment.ID, doc{"note": "paid in full"})
	require.NoError(t, err)
	assert.Equal(t, payment.ReceiptNumber, updated.ReceiptNumber)
}

func TestFeeCollectionAmountAndMethod(t *testing.T) {
	ctx := context.Background()
	res, _ := newTestResources(t)
	fx := seedFinance(t, res)

	_, err := res.FeeCollections.Create(ctx, doc{"studentId": fx.student.ID, "feeTypeId": fx.feeType.ID, "amount": "abc"})
	require.ErrorIs(t, err, appErrors.ErrValidation)
	assert.Contains(t, appErrors.FromError(err).Message, "amount")

	_, err = res.FeeCollections.Create(ctx, doc{"studentId": fx.student.ID, "feeTypeId": fx.feeType.ID, "amount": 10, "paymentMethod": "bank"})
	require.ErrorIs(t, err, appErrors.ErrValidation)
	assert.Equal(t, "bankAccountId is required for bank payments", appErrors.FromError(err).Message)

	account, err := res.BankAccounts.Create(ctx, doc{"bankName": "City", "accountName": "School", "accountNumber": "001"})
	require.NoError(t, err)
	payment, err := res.FeeCollections.Create(ctx, doc{
		"studentId": fx.student.ID, "feeTypeId": fx.feeType.ID, "amount": 10,
		"paymentMethod": "bank", "bankAccountId": account.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, "City", payment.BankName)
}

func TestFeeTypeAmountIsLenient(t *testing.T) {
	res, _ := newTestResources(t)
	fx := seedFinance(t, res)
	assert.Equal(t, "1500.5", fx.feeType.Amount.String())

	fee, err := res.FeeTypes.Create(context.Background(), doc{"name": "Library", "classId": fx.class.ID, "sessionId": fx.session.ID, "amount": "n/a"})
	require.NoError(t, err)
	assert.True(t, fee.Amount.IsZero())
}

func TestDiscountConsistency(t *testing.T) {
	ctx := context.Background()
	res, _ := newTestResources(t)
	fx := seedFinance(t, res)
	sibling, err := res.DiscountTypes.Create(ctx, doc{"name": "Sibling"})
	require.NoError(t, err)

	base := func() doc {
		return doc{
			"sessionId": fx.session.ID, "classId": fx.class.ID,
			"feeTypeId": fx.feeType.ID, "discountTypeId": sibling.ID, "percentage": 25,
		}
	}

	discount, err := res.Discounts.Create(ctx, base())
	require.NoError(t, err)
	assert.Equal(t, "Sibling", discount.DiscountTypeName)
	assert.Equal(t, "Tuition", discount.FeeTypeName)

	_, err = res.Discounts.Create(ctx, base())
	assert.ErrorIs(t, err, appErrors.ErrDuplicate)

	tooMuch := base()
	tooMuch["percentage"] = 120
	_, err = res.Discounts.Create(ctx, tooMuch)
	assert.ErrorIs(t, err, appErrors.ErrValidation)

	seven := mustClass(t, res, "Seven")
	mismatch := base()
	mismatch["classId"] = seven.ID
	_, err = res.Discounts.Create(ctx, mismatch)
	require.ErrorIs(t, err, appErrors.ErrValidation)
	assert.Equal(t, "fee type does not belong to the selected class and session", appErrors.FromError(err).Message)
}
