package rest_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	kprof "github.com/pizza-net/pizza-frontend/cmd/pizza/config/profiles"
	krst "github.com/pizza-net/pizza-frontend/cmd/pizza/rest"
	apipayments "github.com/pizza-net/pizza-frontend/pkg/api/types/payments"
	"github.com/pizza-net/pizza-frontend/pkg/utils/try"
)

func TestCreateCheckoutSession(t *testing.T) {
	t.Run("when server accepts, it returns the session", func(t *testing.T) {
		expected := apipayments.CheckoutSession{
			CheckoutURL: "https://pay.example/cs_test_1",
			SessionID:   "cs_test_1",
			OrderID:     42,
		}

		var request *http.Request
		var requestBody apipayments.CheckoutSpec
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			request = r
			if err := json.NewDecoder(r.Body).Decode(&requestBody); err != nil {
				t.Fatal(err)
			}
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(expected)
		}))
		defer server.Close()

		profile := kprof.Profile{ApiRoot: server.URL}
		testee := try.To(krst.NewClient(&profile)).OrFatal(t)

		spec := apipayments.CheckoutSpec{
			OrderID: 42, CustomerID: 7, Amount: 94.97, Currency: "usd",
			Description: "Pizza order #42", CustomerEmail: "alice@example.com",
		}
		actual := try.To(testee.CreateCheckoutSession(context.Background(), spec)).OrFatal(t)

		if request.Method != http.MethodPost || request.URL.Path != "/payments/create-checkout-session" {
			t.Errorf(
				"request is not POST /payments/create-checkout-session (actual = %s %s)",
				request.Method, request.URL.Path,
			)
		}
		if requestBody != spec {
			t.Errorf("unexpected spec sent (actual, expected) = (%+v, %+v)", requestBody, spec)
		}
		if !actual.Equal(&expected) {
			t.Errorf("unexpected session (actual, expected) = (%+v, %+v)", actual, expected)
		}
	})

	t.Run("when server rejects, it returns error and no session", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadGateway)
			w.Write([]byte(`{"message": "payment provider unavailable"}`))
		}))
		defer server.Close()

		profile := kprof.Profile{ApiRoot: server.URL}
		testee := try.To(krst.NewClient(&profile)).OrFatal(t)

		if _, err := testee.CreateCheckoutSession(
			context.Background(),
			apipayments.CheckoutSpec{OrderID: 42, Amount: 94.97},
		); err == nil {
			t.Error("no error occured")
		}
	})
}

func TestVerifySession(t *testing.T) {
	t.Run("it posts the session id and returns the result", func(t *testing.T) {
		expected := apipayments.VerifyResult{
			OrderID: 42, Amount: 94.97, PaymentID: "pi_1", Status: "COMPLETED",
		}

		var request *http.Request
		var requestBody apipayments.VerifySpec
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			request = r
			if err := json.NewDecoder(r.Body).Decode(&requestBody); err != nil {
				t.Fatal(err)
			}
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(expected)
		}))
		defer server.Close()

		profile := kprof.Profile{ApiRoot: server.URL}
		testee := try.To(krst.NewClient(&profile)).OrFatal(t)

		actual := try.To(testee.VerifySession(
			context.Background(), apipayments.VerifySpec{SessionID: "cs_test_1"},
		)).OrFatal(t)

		if request.Method != http.MethodPost || request.URL.Path != "/payments/verify-session" {
			t.Errorf(
				"request is not POST /payments/verify-session (actual = %s %s)",
				request.Method, request.URL.Path,
			)
		}
		if requestBody.SessionID != "cs_test_1" {
			t.Errorf("unexpected session id sent: %s", requestBody.SessionID)
		}
		if !actual.Equal(&expected) {
			t.Errorf("unexpected result (actual, expected) = (%+v, %+v)", actual, expected)
		}
	})
}
