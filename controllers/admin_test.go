package controllers_test

import (
	"fmt"
	"net/http"
	"testing"
)

func TestAdminLogin(t *testing.T) {
	srv := newServer(t)

	status, resp := postJSON(t, srv, "/admin/login", map[string]any{"pin": testPIN})
	if status != http.StatusOK {
		t.Fatalf("login returned %d: %v", status, resp)
	}
	if resp["success"] != true {
		t.Errorf("login response: %v", resp)
	}

	status, _ = postJSON(t, srv, "/admin/login", map[string]any{"pin": "0000"})
	if status != http.StatusUnauthorized {
		t.Errorf("wrong PIN returned %d, want 401", status)
	}
}

func TestAddPunch(t *testing.T) {
	srv := newServer(t)

	id := signupCustomer(t, srv, "Ada", "555-0100", "")

	status, _ := postJSON(t, srv, "/admin/add-punch", map[string]any{
		"customer_id": "no-such-id",
		"amount":      25.0,
	})
	if status != http.StatusNotFound {
		t.Errorf("unknown customer returned %d, want 404", status)
	}

	// Amounts under $10 are rejected outright, not rounded to zero punches.
	status, _ = postJSON(t, srv, "/admin/add-punch", map[string]any{
		"customer_id": id,
		"amount":      5.0,
	})
	if status != http.StatusBadRequest {
		t.Errorf("$5 purchase returned %d, want 400", status)
	}

	resp := earnPunches(t, srv, id, 25.0)
	if resp["punches_added"] != float64(2) {
		t.Errorf("punches_added = %v, want 2", resp["punches_added"])
	}
	customer := resp["customer"].(map[string]any)
	if customer["punches"] != float64(2) || customer["total_spent"] != float64(25) {
		t.Errorf("customer after earn: %v", customer)
	}
	transaction := resp["transaction"].(map[string]any)
	if transaction["amount"] != float64(25) || transaction["punches_added"] != float64(2) {
		t.Errorf("earn transaction: %v", transaction)
	}
	if _, present := transaction["reward_redeemed"]; present {
		t.Errorf("earn transaction carries reward_redeemed: %v", transaction)
	}
	if transaction["customer_name"] != "Ada" {
		t.Errorf("transaction missing name snapshot: %v", transaction)
	}
}

func TestRedeemReward(t *testing.T) {
	srv := newServer(t)

	id := signupCustomer(t, srv, "Ada", "555-0100", "")

	status, _ := postJSON(t, srv, "/admin/redeem-reward", map[string]any{
		"customer_id": "no-such-id",
		"tier":        10,
	})
	if status != http.StatusNotFound {
		t.Errorf("unknown customer returned %d, want 404", status)
	}

	status, _ = postJSON(t, srv, "/admin/redeem-reward", map[string]any{
		"customer_id": id,
		"tier":        5,
	})
	if status != http.StatusBadRequest {
		t.Errorf("tier 5 returned %d, want 400", status)
	}

	earnPunches(t, srv, id, 90) // 9 punches
	status, _ = postJSON(t, srv, "/admin/redeem-reward", map[string]any{
		"customer_id": id,
		"tier":        10,
	})
	if status != http.StatusBadRequest {
		t.Errorf("redeem with 9 punches returned %d, want 400", status)
	}

	earnPunches(t, srv, id, 10) // now 10 punches
	status, resp := postJSON(t, srv, "/admin/redeem-reward", map[string]any{
		"customer_id": id,
		"tier":        10,
	})
	if status != http.StatusOK {
		t.Fatalf("redeem returned %d: %v", status, resp)
	}
	if resp["reward_redeemed"] != "15% Off" || resp["punches_used"] != float64(10) {
		t.Errorf("redeem response: %v", resp)
	}
	customer := resp["customer"].(map[string]any)
	if customer["punches"] != float64(0) {
		t.Errorf("punches after redeem = %v, want 0", customer["punches"])
	}
	transaction := resp["transaction"].(map[string]any)
	if transaction["amount"] != float64(0) || transaction["punches_added"] != float64(-10) {
		t.Errorf("redemption transaction: %v", transaction)
	}
	if transaction["discount_percent"] != float64(15) || transaction["reward_redeemed"] != "15% Off" {
		t.Errorf("redemption transaction labels: %v", transaction)
	}
}

func TestListCustomers(t *testing.T) {
	srv := newServer(t)

	signupCustomer(t, srv, "Ada", "555-0100", "")
	second := signupCustomer(t, srv, "Grace", "555-0101", "")
	earnPunches(t, srv, second, 100) // 10 punches

	status, customers := getList(t, srv, "/admin/customers")
	if status != http.StatusOK {
		t.Fatalf("list customers returned %d", status)
	}
	if len(customers) != 2 {
		t.Fatalf("listed %d customers, want 2", len(customers))
	}

	// Newest-created-first, each annotated with its reward snapshot.
	if customers[0]["name"] != "Grace" || customers[1]["name"] != "Ada" {
		t.Errorf("ordering: %v then %v", customers[0]["name"], customers[1]["name"])
	}
	available := customers[0]["available_rewards"].([]any)
	if len(available) != 1 {
		t.Errorf("Grace at 10 punches has %d available rewards, want 1", len(available))
	}
	next := customers[1]["next_reward"].(map[string]any)
	if next["tier"] != float64(10) || next["punches_needed"] != float64(10) {
		t.Errorf("Ada next_reward: %v", next)
	}
}

func TestListTransactions(t *testing.T) {
	srv := newServer(t)

	id := signupCustomer(t, srv, "Ada", "555-0100", "")
	earnPunches(t, srv, id, 20)
	earnPunches(t, srv, id, 30)

	status, transactions := getList(t, srv, "/admin/transactions")
	if status != http.StatusOK {
		t.Fatalf("list transactions returned %d", status)
	}
	if len(transactions) != 2 {
		t.Fatalf("listed %d transactions, want 2", len(transactions))
	}
	if transactions[0]["amount"] != float64(30) || transactions[1]["amount"] != float64(20) {
		t.Errorf("transactions not newest-first: %v", transactions)
	}
}

func TestEndToEndFlow(t *testing.T) {
	srv := newServer(t)

	id := signupCustomer(t, srv, "Ada", "555-0100", "")

	resp := earnPunches(t, srv, id, 109.99)
	if resp["punches_added"] != float64(10) {
		t.Fatalf("earn $109.99 added %v punches, want 10", resp["punches_added"])
	}
	if resp["customer"].(map[string]any)["punches"] != float64(10) {
		t.Fatalf("customer after earn: %v", resp["customer"])
	}

	status, redeemed := postJSON(t, srv, "/admin/redeem-reward", map[string]any{
		"customer_id": id,
		"tier":        10,
	})
	if status != http.StatusOK {
		t.Fatalf("redeem returned %d: %v", status, redeemed)
	}
	if redeemed["customer"].(map[string]any)["punches"] != float64(0) {
		t.Fatalf("punches after redeem: %v", redeemed["customer"])
	}

	status, lookup := postJSON(t, srv, "/customers/lookup", map[string]any{"identifier": "555-0100"})
	if status != http.StatusOK {
		t.Fatalf("lookup returned %d", status)
	}
	transactions := lookup["transactions"].([]any)
	if len(transactions) != 2 {
		t.Fatalf("ledger has %d entries, want 2", len(transactions))
	}
	newest := transactions[0].(map[string]any)
	oldest := transactions[1].(map[string]any)
	if newest["amount"] != float64(0) || newest["punches_added"] != float64(-10) {
		t.Errorf("newest entry should be the redemption: %v", newest)
	}
	if oldest["amount"] != float64(109.99) || oldest["punches_added"] != float64(10) {
		t.Errorf("oldest entry should be the earn: %v", oldest)
	}
}

func TestLookupTransactionCap(t *testing.T) {
	srv := newServer(t)

	id := signupCustomer(t, srv, "Ada", "555-0100", "")
	for i := 0; i < 60; i++ {
		earnPunches(t, srv, id, float64(10+i))
	}

	status, lookup := postJSON(t, srv, "/customers/lookup", map[string]any{"identifier": "555-0100"})
	if status != http.StatusOK {
		t.Fatalf("lookup returned %d", status)
	}
	transactions := lookup["transactions"].([]any)
	if len(transactions) != 50 {
		t.Fatalf("lookup returned %d transactions, want cap of 50", len(transactions))
	}
	newest := transactions[0].(map[string]any)
	if newest["amount"] != float64(69) {
		t.Errorf("newest amount = %v, want 69 (last earn)", newest["amount"])
	}

	// The global listing is capped at 500, so all 60 remain visible there.
	status, all := getList(t, srv, "/admin/transactions")
	if status != http.StatusOK {
		t.Fatalf("list transactions returned %d", status)
	}
	if len(all) != 60 {
		t.Errorf("global listing returned %d, want 60", len(all))
	}
}

func TestRedeemAllTiers(t *testing.T) {
	srv := newServer(t)

	cases := []struct {
		tier     int
		discount float64
		label    string
	}{
		{10, 15, "15% Off"},
		{15, 20, "20% Off"},
		{20, 25, "25% Off"},
	}
	for _, tc := range cases {
		id := signupCustomer(t, srv, fmt.Sprintf("Tier %d", tc.tier),
			fmt.Sprintf("555-02%02d", tc.tier), "")
		earnPunches(t, srv, id, float64(tc.tier*10))

		status, resp := postJSON(t, srv, "/admin/redeem-reward", map[string]any{
			"customer_id": id,
			"tier":        tc.tier,
		})
		if status != http.StatusOK {
			t.Fatalf("redeem tier %d returned %d: %v", tc.tier, status, resp)
		}
		if resp["reward_redeemed"] != tc.label {
			t.Errorf("tier %d label = %v, want %q", tc.tier, resp["reward_redeemed"], tc.label)
		}
		transaction := resp["transaction"].(map[string]any)
		if transaction["discount_percent"] != tc.discount {
			t.Errorf("tier %d discount = %v, want %v", tc.tier, transaction["discount_percent"], tc.discount)
		}
	}
}
