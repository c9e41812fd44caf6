package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/marketpace/demo-accounts/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestResetVerifyHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	type requestBody struct {
		email string
		code  string
	}

	tests := []struct {
		name         string
		reqBody      requestBody
		mockSetup    func(m *MockCodeVerifier)
		expectedCode int
		expectedBody map[string]any
		rawBody      bool
	}{
		{
			name: "valid code",
			reqBody: requestBody{
				email: "jo@example.com",
				code:  "123456",
			},
			mockSetup: func(m *MockCodeVerifier) {
				m.EXPECT().
					VerifyCode(gomock.Any(), "jo@example.com", "123456").
					Return(int64(7), nil)
			},
			expectedCode: 200,
			expectedBody: map[string]any{
				"success": true,
				"message": "Reset code verified",
			},
		},
		{
			name: "wrong code",
			reqBody: requestBody{
				email: "jo@example.com",
				code:  "000000",
			},
			mockSetup: func(m *MockCodeVerifier) {
				m.EXPECT().
					VerifyCode(gomock.Any(), "jo@example.com", "000000").
					Return(int64(0), services.ErrInvalidResetCode)
			},
			expectedCode: 400,
			expectedBody: map[string]any{
				"success": false,
				"message": "Invalid or expired reset code",
			},
		},
		{
			name: "expired code",
			reqBody: requestBody{
				email: "jo@example.com",
				code:  "123456",
			},
			mockSetup: func(m *MockCodeVerifier) {
				m.EXPECT().
					VerifyCode(gomock.Any(), "jo@example.com", "123456").
					Return(int64(0), services.ErrResetCodeExpired)
			},
			expectedCode: 400,
			expectedBody: map[string]any{
				"success": false,
				"message": "Reset code has expired",
			},
		},
		{
			name:         "missing code",
			reqBody:      requestBody{email: "jo@example.com"},
			expectedCode: 400,
			expectedBody: map[string]any{
				"success": false,
				"message": "All fields are required",
			},
		},
		{
			name: "store failure",
			reqBody: requestBody{
				email: "jo@example.com",
				code:  "123456",
			},
			mockSetup: func(m *MockCodeVerifier) {
				m.EXPECT().
					VerifyCode(gomock.Any(), "jo@example.com", "123456").
					Return(int64(0), errors.New("connection refused"))
			},
			expectedCode: 500,
			expectedBody: map[string]any{
				"success": false,
				"message": "Error verifying reset code",
			},
		},
		{
			name:         "invalid json",
			rawBody:      true,
			expectedCode: 400,
			expectedBody: map[string]any{
				"success": false,
				"message": "Invalid request body",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockCodeVerifier(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewResetVerifyHandler(mockSvc)

			var req *http.Request
			if tt.rawBody {
				req = httptest.NewRequest(http.MethodPost, "/api/password-reset/verify", bytes.NewBufferString("{invalid json}"))
			} else {
				bodyBytes, _ := json.Marshal(ResetVerifyRequest{
					Email:     tt.reqBody.email,
					ResetCode: tt.reqBody.code,
				})
				req = httptest.NewRequest(http.MethodPost, "/api/password-reset/verify", bytes.NewBuffer(bodyBytes))
			}

			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			var resp map[string]any
			err := json.Unmarshal(rr.Body.Bytes(), &resp)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedBody, resp)
		})
	}
}
