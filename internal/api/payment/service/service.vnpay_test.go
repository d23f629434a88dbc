// Package paymentsvc - test ký và xác minh tham số VNPay.
package paymentsvc

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func testConfig() VNPayConfig {
	return VNPayConfig{
		TmnCode:    "CGXZLS0Z",
		HashSecret: "XQ715JX17ERO040AQV9OLC23NW7DHKF1",
		PayURL:     "https://sandbox.vnpayment.vn/paymentv2/vpcpay.html",
		ReturnURL:  "http://localhost:3000/payment/vnpay-return",
	}
}

func TestSignedQuery_SortsKeysAndEncodes(t *testing.T) {
	params := map[string]string{
		"vnp_TxnRef":    "HD1234ABCD",
		"vnp_Amount":    "15000000",
		"vnp_OrderInfo": "Thanh toan hoa don HD1234ABCD",
	}

	query := SignedQuery(params)

	// Khóa phải theo thứ tự tăng dần
	assert.True(t, strings.Index(query, "vnp_Amount") < strings.Index(query, "vnp_OrderInfo"))
	assert.True(t, strings.Index(query, "vnp_OrderInfo") < strings.Index(query, "vnp_TxnRef"))
	// Khoảng trắng mã hóa thành dấu cộng
	assert.Contains(t, query, "vnp_OrderInfo=Thanh+toan+hoa+don+HD1234ABCD")
}

func TestSignedQuery_SkipsEmptyValues(t *testing.T) {
	query := SignedQuery(map[string]string{
		"vnp_TxnRef":   "HD1",
		"vnp_BankCode": "",
	})
	assert.Equal(t, "vnp_TxnRef=HD1", query)
}

func TestSign_Deterministic(t *testing.T) {
	first := Sign("secret", "a=1&b=2")
	second := Sign("secret", "a=1&b=2")
	other := Sign("secret", "a=1&b=3")

	assert.Equal(t, first, second)
	assert.NotEqual(t, first, other)
	// HMAC-SHA512 hex dài 128 ký tự, chữ thường
	assert.Len(t, first, 128)
	assert.Equal(t, strings.ToLower(first), first)
}

func TestBuildPaymentURL_ContainsRequiredParams(t *testing.T) {
	cfg := testConfig()
	createTime := time.Date(2025, 3, 15, 10, 30, 0, 0, time.UTC)

	paymentURL, err := BuildPaymentURL(cfg, PaymentRequest{
		InvoiceCode: "HD1234ABCD",
		Amount:      150000,
		OrderInfo:   "Thanh toan hoa don HD1234ABCD",
		IPAddr:      "127.0.0.1",
		CreateTime:  createTime,
	})
	assert.NoError(t, err)

	assert.True(t, strings.HasPrefix(paymentURL, cfg.PayURL+"?"))
	assert.Contains(t, paymentURL, "vnp_Version=2.1.0")
	assert.Contains(t, paymentURL, "vnp_Command=pay")
	assert.Contains(t, paymentURL, "vnp_TmnCode=CGXZLS0Z")
	// Tiền nhân 100 theo quy ước VNPay
	assert.Contains(t, paymentURL, "vnp_Amount=15000000")
	assert.Contains(t, paymentURL, "vnp_CurrCode=VND")
	assert.Contains(t, paymentURL, "vnp_TxnRef=HD1234ABCD")
	// 10:30 UTC là 17:30 giờ Việt Nam
	assert.Contains(t, paymentURL, "vnp_CreateDate=20250315173000")
	assert.Contains(t, paymentURL, "vnp_ExpireDate=20250315174500")
	assert.Contains(t, paymentURL, "vnp_SecureHash=")
	// Không gửi bankCode thì không có vnp_BankCode trong URL
	assert.NotContains(t, paymentURL, "vnp_BankCode")
}

func TestBuildPaymentURL_WithBankCode(t *testing.T) {
	paymentURL, err := BuildPaymentURL(testConfig(), PaymentRequest{
		InvoiceCode: "HD1234ABCD",
		Amount:      150000,
		IPAddr:      "127.0.0.1",
		BankCode:    "NCB",
		CreateTime:  time.Date(2025, 3, 15, 10, 30, 0, 0, time.UTC),
	})
	assert.NoError(t, err)
	assert.Contains(t, paymentURL, "vnp_BankCode=NCB")
}

func TestBuildPaymentURL_RejectsInvalidInput(t *testing.T) {
	_, err := BuildPaymentURL(VNPayConfig{}, PaymentRequest{InvoiceCode: "HD1", Amount: 1000})
	assert.Error(t, err)

	_, err = BuildPaymentURL(testConfig(), PaymentRequest{InvoiceCode: "HD1", Amount: 0})
	assert.Error(t, err)
}

// buildSignedParams dựng bộ tham số callback hợp lệ để test VerifyReturn
func buildSignedParams(cfg VNPayConfig, responseCode string) map[string]string {
	params := map[string]string{
		"vnp_TmnCode":       cfg.TmnCode,
		"vnp_Amount":        "15000000",
		"vnp_TxnRef":        "HD1234ABCD",
		"vnp_ResponseCode":  responseCode,
		"vnp_TransactionNo": "14226112",
		"vnp_OrderInfo":     "Thanh toan hoa don HD1234ABCD",
	}
	params["vnp_SecureHash"] = Sign(cfg.HashSecret, SignedQuery(params))
	return params
}

func TestVerifyReturn_ValidSignature(t *testing.T) {
	cfg := testConfig()
	result := VerifyReturn(cfg, buildSignedParams(cfg, "00"))

	assert.True(t, result.Valid)
	assert.True(t, result.Success)
	assert.Equal(t, "HD1234ABCD", result.TxnRef)
	assert.Equal(t, int64(150000), result.Amount)
	assert.Equal(t, "14226112", result.TransactionNo)
}

func TestVerifyReturn_FailedTransaction(t *testing.T) {
	cfg := testConfig()
	result := VerifyReturn(cfg, buildSignedParams(cfg, "24"))

	assert.True(t, result.Valid)
	assert.False(t, result.Success)
	assert.Equal(t, "24", result.ResponseCode)
}

func TestVerifyReturn_TamperedAmount(t *testing.T) {
	cfg := testConfig()
	params := buildSignedParams(cfg, "00")
	params["vnp_Amount"] = "100"

	result := VerifyReturn(cfg, params)
	assert.False(t, result.Valid)
	assert.False(t, result.Success)
}

func TestVerifyReturn_MissingHash(t *testing.T) {
	cfg := testConfig()
	params := buildSignedParams(cfg, "00")
	delete(params, "vnp_SecureHash")

	result := VerifyReturn(cfg, params)
	assert.False(t, result.Valid)
}

func TestVerifyReturn_IgnoresHashTypeParam(t *testing.T) {
	cfg := testConfig()
	params := buildSignedParams(cfg, "00")
	// vnp_SecureHashType không tham gia chuỗi ký
	params["vnp_SecureHashType"] = "HMACSHA512"

	result := VerifyReturn(cfg, params)
	assert.True(t, result.Valid)
}
