package wb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestFetchCardDetailsChunks(t *testing.T) {
	var batches [][]int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/content/v2/get/cards/list" {
			t.Errorf("Unexpected path %s", r.URL.Path)
		}

		body, _ := io.ReadAll(r.Body)
		var req struct {
			Settings struct {
				Filter struct {
					NmIDs []int64 `json:"nmIDs"`
				} `json:"filter"`
			} `json:"settings"`
		}
		if err := json.Unmarshal(body, &req); err != nil {
			t.Fatalf("Undecodable batch request: %v", err)
		}
		batches = append(batches, req.Settings.Filter.NmIDs)

		var cards []string
		for _, id := range req.Settings.Filter.NmIDs {
			cards = append(cards, fmt.Sprintf(`{"nmID":%d,"title":"Card %d"}`, id, id))
		}
		fmt.Fprintf(w, `{"cards":[%s],"error":false}`, strings.Join(cards, ","))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	client.cardChunkSize = 2

	cards := client.FetchCardDetails(context.Background(), []int64{1, 2, 3, 4, 5})

	if len(batches) != 3 {
		t.Fatalf("Expected 3 batches for 5 ids with chunk size 2, got %d", len(batches))
	}
	if len(batches[0]) != 2 || len(batches[2]) != 1 {
		t.Errorf("Batch sizes wrong: %v", batches)
	}
	if len(cards) != 5 {
		t.Errorf("Expected 5 cards, got %d", len(cards))
	}
}

func TestFetchCardDetailsSkipsFailedBatch(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			w.Write([]byte(`{"cards":[],"error":true,"errorText":"bad filter"}`))
			return
		}
		w.Write([]byte(`{"cards":[{"nmID":3,"title":"Card 3"}],"error":false}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	client.cardChunkSize = 2

	cards := client.FetchCardDetails(context.Background(), []int64{1, 2, 3})

	if calls != 2 {
		t.Fatalf("Expected 2 batch calls, got %d", calls)
	}
	if len(cards) != 1 || cards[0].NmID != 3 {
		t.Errorf("Expected only the surviving batch's card, got %v", cards)
	}
}

func TestFetchCardDetailsEmptyInput(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("No request expected for empty nmID list")
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	if cards := client.FetchCardDetails(context.Background(), nil); len(cards) != 0 {
		t.Errorf("Expected no cards, got %v", cards)
	}
}
