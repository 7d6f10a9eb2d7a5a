package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/dmitrijs2005/gamecart/internal/common"
	"github.com/dmitrijs2005/gamecart/internal/server/models"
)

// cacheTTL bounds how long catalog responses are reused. Cart prices are
// snapshotted at insertion time anyway, so staleness here is harmless.
const cacheTTL = 5 * time.Minute

// CheapShark is an HTTP Client implementation for the CheapShark API.
// Responses are cached in expirable LRUs keyed by keyword / game id, since
// the upstream is rate-limited.
type CheapShark struct {
	baseURL     string
	client      *http.Client
	searchCache *expirable.LRU[string, []models.Game]
	infoCache   *expirable.LRU[int64, models.Game]
}

func NewCheapShark(baseURL string, timeout time.Duration, cacheSize int) *CheapShark {
	return &CheapShark{
		baseURL:     strings.TrimRight(baseURL, "/"),
		client:      &http.Client{Timeout: timeout},
		searchCache: expirable.NewLRU[string, []models.Game](cacheSize, nil, cacheTTL),
		infoCache:   expirable.NewLRU[int64, models.Game](cacheSize, nil, cacheTTL),
	}
}

// searchItem is one entry of the /games?title= response.
type searchItem struct {
	GameID   string `json:"gameID"`
	External string `json:"external"`
	Cheapest string `json:"cheapest"`
}

// infoResponse is the /games?id= response.
type infoResponse struct {
	Info struct {
		Title string `json:"title"`
	} `json:"info"`
	Deals []struct {
		Price string `json:"price"`
	} `json:"deals"`
}

func (c *CheapShark) get(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrUpstream, err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, common.ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status %s", common.ErrUpstream, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrUpstream, err)
	}

	return body, nil
}

func (c *CheapShark) Search(ctx context.Context, keyword string) ([]models.Game, error) {
	if cached, ok := c.searchCache.Get(keyword); ok {
		return cached, nil
	}

	body, err := c.get(ctx, c.baseURL+"/games?title="+url.QueryEscape(keyword))
	if err != nil {
		return nil, err
	}

	var items []searchItem
	if err := json.Unmarshal(body, &items); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrUpstream, err)
	}

	games := []models.Game{}
	for _, item := range items {
		id, err := strconv.ParseInt(item.GameID, 10, 64)
		if err != nil {
			continue
		}
		price, err := strconv.ParseFloat(item.Cheapest, 64)
		if err != nil {
			continue
		}
		games = append(games, models.Game{ID: id, Name: item.External, Price: price})
	}

	c.searchCache.Add(keyword, games)
	return games, nil
}

func (c *CheapShark) GameInfo(ctx context.Context, id int64) (*models.Game, error) {
	if cached, ok := c.infoCache.Get(id); ok {
		game := cached
		return &game, nil
	}

	body, err := c.get(ctx, c.baseURL+"/games?id="+strconv.FormatInt(id, 10))
	if err != nil {
		return nil, err
	}

	// CheapShark answers an unknown id with an empty payload
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("[]")) || bytes.Equal(trimmed, []byte("{}")) {
		return nil, common.ErrNotFound
	}

	var info infoResponse
	if err := json.Unmarshal(body, &info); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrUpstream, err)
	}
	if info.Info.Title == "" {
		return nil, common.ErrNotFound
	}

	var price float64
	if len(info.Deals) > 0 {
		price, err = strconv.ParseFloat(info.Deals[0].Price, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", common.ErrUpstream, err)
		}
	}

	game := models.Game{ID: id, Name: info.Info.Title, Price: price}
	c.infoCache.Add(id, game)
	return &game, nil
}
