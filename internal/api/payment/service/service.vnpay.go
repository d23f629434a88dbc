// Package paymentsvc - tạo URL thanh toán và xác minh callback của VNPay.
package paymentsvc

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"net/url"
	"sort"
	"strings"
	"time"
)

// VNPayConfig cấu hình kết nối cổng thanh toán VNPay
type VNPayConfig struct {
	TmnCode    string
	HashSecret string
	PayURL     string
	ReturnURL  string
}

// Các mã phản hồi gửi lại cho VNPay theo tài liệu tích hợp
const (
	VNPayRespSuccess          = "00" // Giao dịch thành công
	VNPayRespOrderNotFound    = "01" // Không tìm thấy đơn hàng
	VNPayRespInvalidSignature = "97" // Chữ ký không hợp lệ
)

const vnpayTimeLayout = "20060102150405"

// encodeRFC1866 mã hóa query theo kiểu VNPay yêu cầu: RFC 3986 nhưng
// khoảng trắng thành dấu cộng
func encodeRFC1866(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "%20", "+")
}

// SignedQuery ghép các tham số vnp_ theo thứ tự khóa tăng dần thành chuỗi
// k=v&... đã mã hóa, dùng chung cho cả ký và xác minh
func SignedQuery(params map[string]string) string {
	keys := make([]string, 0, len(params))
	for k, v := range params {
		if v == "" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(encodeRFC1866(k))
		b.WriteByte('=')
		b.WriteString(encodeRFC1866(params[k]))
	}
	return b.String()
}

// Sign ký chuỗi query bằng HMAC-SHA512, trả về hex thường
func Sign(secret, data string) string {
	mac := hmac.New(sha512.New, []byte(secret))
	mac.Write([]byte(data))
	return hex.EncodeToString(mac.Sum(nil))
}

// PaymentRequest thông tin cần thiết để dựng URL thanh toán
type PaymentRequest struct {
	InvoiceCode string // dùng làm vnp_TxnRef
	Amount      int64  // tổng tiền hóa đơn, đơn vị đồng
	OrderInfo   string
	IPAddr      string
	BankCode    string // để trống thì VNPay hiển thị trang chọn ngân hàng
	Locale      string // "vn" hoặc "en", để trống dùng "vn"
	CreateTime  time.Time
}

// BuildPaymentURL dựng URL chuyển hướng sang cổng VNPay.
// Tiền gửi đi nhân 100 theo quy ước của VNPay, URL hết hạn sau 15 phút.
func BuildPaymentURL(cfg VNPayConfig, req PaymentRequest) (string, error) {
	if cfg.TmnCode == "" || cfg.HashSecret == "" {
		return "", fmt.Errorf("vnpay config is missing tmn code or hash secret")
	}
	if req.Amount <= 0 {
		return "", fmt.Errorf("vnpay amount must be positive: %d", req.Amount)
	}

	locale := req.Locale
	if locale == "" {
		locale = "vn"
	}
	loc, err := time.LoadLocation("Asia/Ho_Chi_Minh")
	if err != nil {
		return "", fmt.Errorf("failed to load vnpay timezone: %w", err)
	}
	createTime := req.CreateTime.In(loc)

	params := map[string]string{
		"vnp_Version":    "2.1.0",
		"vnp_Command":    "pay",
		"vnp_TmnCode":    cfg.TmnCode,
		"vnp_Amount":     fmt.Sprintf("%d", req.Amount*100),
		"vnp_CreateDate": createTime.Format(vnpayTimeLayout),
		"vnp_ExpireDate": createTime.Add(15 * time.Minute).Format(vnpayTimeLayout),
		"vnp_CurrCode":   "VND",
		"vnp_IpAddr":     req.IPAddr,
		"vnp_Locale":     locale,
		"vnp_OrderInfo":  req.OrderInfo,
		"vnp_OrderType":  "other",
		"vnp_ReturnUrl":  cfg.ReturnURL,
		"vnp_TxnRef":     req.InvoiceCode,
	}
	if req.BankCode != "" {
		params["vnp_BankCode"] = req.BankCode
	}

	query := SignedQuery(params)
	secureHash := Sign(cfg.HashSecret, query)
	return cfg.PayURL + "?" + query + "&vnp_SecureHash=" + secureHash, nil
}

// VerifyResult kết quả xác minh callback từ VNPay
type VerifyResult struct {
	Valid         bool   // chữ ký hợp lệ
	Success       bool   // chữ ký hợp lệ và vnp_ResponseCode == "00"
	TxnRef        string // mã hóa đơn
	ResponseCode  string
	Amount        int64 // tiền đã chia lại 100, đơn vị đồng
	TransactionNo string
}

// VerifyReturn xác minh chữ ký của tham số VNPay gửi về.
// Chuỗi ký được dựng lại từ toàn bộ tham số vnp_ trừ vnp_SecureHash
// và vnp_SecureHashType rồi so sánh HMAC theo thời gian không đổi.
func VerifyReturn(cfg VNPayConfig, params map[string]string) VerifyResult {
	result := VerifyResult{
		TxnRef:        params["vnp_TxnRef"],
		ResponseCode:  params["vnp_ResponseCode"],
		TransactionNo: params["vnp_TransactionNo"],
	}

	receivedHash := params["vnp_SecureHash"]
	if receivedHash == "" {
		return result
	}

	signed := make(map[string]string, len(params))
	for k, v := range params {
		if k == "vnp_SecureHash" || k == "vnp_SecureHashType" {
			continue
		}
		if strings.HasPrefix(k, "vnp_") {
			signed[k] = v
		}
	}

	expected := Sign(cfg.HashSecret, SignedQuery(signed))
	if !hmac.Equal([]byte(expected), []byte(strings.ToLower(receivedHash))) {
		return result
	}

	result.Valid = true
	result.Success = result.ResponseCode == VNPayRespSuccess
	if raw := params["vnp_Amount"]; raw != "" {
		var amount int64
		if _, err := fmt.Sscanf(raw, "%d", &amount); err == nil {
			result.Amount = amount / 100
		}
	}
	return result
}
