package rest_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	kprof "github.com/pizza-net/pizza-frontend/cmd/pizza/config/profiles"
	krst "github.com/pizza-net/pizza-frontend/cmd/pizza/rest"
	apideliveries "github.com/pizza-net/pizza-frontend/pkg/api/types/deliveries"
	"github.com/pizza-net/pizza-frontend/pkg/tracking"
	"github.com/pizza-net/pizza-frontend/pkg/utils/try"
)

func TestGetDeliveryByOrder(t *testing.T) {
	t.Run("when server returns the delivery, it returns that as is", func(t *testing.T) {
		courierID := int64(3)
		expected := apideliveries.Detail{
			ID: 100, OrderID: 42, Status: apideliveries.InTransit, CourierID: &courierID,
			DeliveryAddress: "1 Pizza Way", CustomerPhone: "+1-555-0100",
		}

		var request *http.Request
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			request = r
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(expected)
		}))
		defer server.Close()

		profile := kprof.Profile{ApiRoot: server.URL}
		testee := try.To(krst.NewClient(&profile)).OrFatal(t)

		actual := try.To(testee.GetDeliveryByOrder(context.Background(), 42)).OrFatal(t)

		if request.Method != http.MethodGet || request.URL.Path != "/deliveries/by-order/42" {
			t.Errorf(
				"request is not GET /deliveries/by-order/42 (actual = %s %s)",
				request.Method, request.URL.Path,
			)
		}
		if !actual.Equal(&expected) {
			t.Errorf("unexpected delivery (actual, expected) = (%+v, %+v)", actual, expected)
		}
	})

	t.Run("404 means the order has no delivery yet", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"message": "no delivery for order 42"}`))
		}))
		defer server.Close()

		profile := kprof.Profile{ApiRoot: server.URL}
		testee := try.To(krst.NewClient(&profile)).OrFatal(t)

		if _, err := testee.GetDeliveryByOrder(
			context.Background(), 42,
		); !errors.Is(err, apideliveries.ErrNotFound) {
			t.Errorf("unexpected error: %v", err)
		}
	})
}

func TestFindDeliveries(t *testing.T) {
	t.Run("filter fields become query parameters; zero values are not sent", func(t *testing.T) {
		var request *http.Request
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			request = r
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode([]apideliveries.Detail{})
		}))
		defer server.Close()

		profile := kprof.Profile{ApiRoot: server.URL}
		testee := try.To(krst.NewClient(&profile)).OrFatal(t)

		courierID := int64(3)
		try.To(testee.FindDeliveries(
			context.Background(),
			apideliveries.Filter{Status: apideliveries.Assigned, CourierID: &courierID},
		)).OrFatal(t)

		q := request.URL.Query()
		if q.Get("status") != "ASSIGNED" {
			t.Errorf("unexpected status param: %s", q.Get("status"))
		}
		if q.Get("courierId") != "3" {
			t.Errorf("unexpected courierId param: %s", q.Get("courierId"))
		}
		if q.Has("customerId") {
			t.Error("customerId should not be sent")
		}
	})
}

func TestAdvanceDelivery(t *testing.T) {
	t.Run("an assigned delivery advances via the next-status operation", func(t *testing.T) {
		advanced := false
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			switch {
			case r.Method == http.MethodGet && r.URL.Path == "/deliveries/100":
				json.NewEncoder(w).Encode(apideliveries.Detail{
					ID: 100, OrderID: 42, Status: apideliveries.Assigned,
				})
			case r.Method == http.MethodPatch && r.URL.Path == "/deliveries/100/next-status":
				// the backend owns the step; the client sends no payload
				advanced = true
				json.NewEncoder(w).Encode(apideliveries.Detail{
					ID: 100, OrderID: 42, Status: apideliveries.PickedUp,
				})
			default:
				t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
			}
		}))
		defer server.Close()

		profile := kprof.Profile{ApiRoot: server.URL}
		testee := try.To(krst.NewClient(&profile)).OrFatal(t)

		actual := try.To(testee.AdvanceDelivery(context.Background(), 100)).OrFatal(t)

		if !advanced {
			t.Error("next-status was not called")
		}
		if actual.Status != apideliveries.PickedUp {
			t.Errorf("unexpected status: %s", actual.Status)
		}
	})

	t.Run("a delivered delivery is rejected locally, with no status request", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodGet {
				t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
			}
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(apideliveries.Detail{
				ID: 100, OrderID: 42, Status: apideliveries.Delivered,
			})
		}))
		defer server.Close()

		profile := kprof.Profile{ApiRoot: server.URL}
		testee := try.To(krst.NewClient(&profile)).OrFatal(t)

		if _, err := testee.AdvanceDelivery(
			context.Background(), 100,
		); !errors.Is(err, tracking.ErrNoForwardTransition) {
			t.Errorf("unexpected error: %v", err)
		}
	})
}

func TestUpdateDeliveryStatus(t *testing.T) {
	t.Run("it patches the status with a json body", func(t *testing.T) {
		var request *http.Request
		var requestBody apideliveries.StatusChange
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			request = r
			if err := json.NewDecoder(r.Body).Decode(&requestBody); err != nil {
				t.Fatal(err)
			}
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(apideliveries.Detail{
				ID: 100, OrderID: 42, Status: requestBody.Status,
			})
		}))
		defer server.Close()

		profile := kprof.Profile{ApiRoot: server.URL}
		testee := try.To(krst.NewClient(&profile)).OrFatal(t)

		actual := try.To(testee.UpdateDeliveryStatus(
			context.Background(), 100, apideliveries.StatusChange{Status: apideliveries.Cancelled},
		)).OrFatal(t)

		if request.Method != http.MethodPatch || request.URL.Path != "/deliveries/100/status" {
			t.Errorf(
				"request is not PATCH /deliveries/100/status (actual = %s %s)",
				request.Method, request.URL.Path,
			)
		}
		if requestBody.Status != apideliveries.Cancelled {
			t.Errorf("unexpected status sent: %s", requestBody.Status)
		}
		if actual.Status != apideliveries.Cancelled {
			t.Errorf("unexpected status: %s", actual.Status)
		}
	})
}

func TestAssignCourier(t *testing.T) {
	t.Run("it puts the courier on the delivery", func(t *testing.T) {
		var request *http.Request
		var requestBody apideliveries.CourierAssignment
		courierID := int64(3)
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			request = r
			if err := json.NewDecoder(r.Body).Decode(&requestBody); err != nil {
				t.Fatal(err)
			}
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(apideliveries.Detail{
				ID: 100, OrderID: 42, Status: apideliveries.Assigned, CourierID: &courierID,
			})
		}))
		defer server.Close()

		profile := kprof.Profile{ApiRoot: server.URL}
		testee := try.To(krst.NewClient(&profile)).OrFatal(t)

		actual := try.To(testee.AssignCourier(
			context.Background(), 100, apideliveries.CourierAssignment{CourierID: 3},
		)).OrFatal(t)

		if request.Method != http.MethodPatch || request.URL.Path != "/deliveries/100/assign" {
			t.Errorf(
				"request is not PATCH /deliveries/100/assign (actual = %s %s)",
				request.Method, request.URL.Path,
			)
		}
		if requestBody.CourierID != 3 {
			t.Errorf("unexpected courier id sent: %d", requestBody.CourierID)
		}
		if actual.Status != apideliveries.Assigned {
			t.Errorf("unexpected status: %s", actual.Status)
		}
	})
}
