package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

type MatrixPoint struct {
	ID  string
	Lat float64
	Lng float64
}

type MatrixEdge struct {
	DistanceMeters  int
	DurationSeconds int
}

type WalkingMatrix map[string]map[string]MatrixEdge

// --------- In-memory cache per (A,B) pair ---------

type pairKey struct {
	Mode string // "walking"
	A    string // stable activity ID
	B    string
}

type matrixPairCacheEntry struct {
	Edge      MatrixEdge
	ExpiresAt time.Time
}

type MatrixPairCache interface {
	Get(k pairKey) (MatrixEdge, bool)
	Set(k pairKey, v MatrixEdge, ttl time.Duration)
}

type inMemoryPairCache struct {
	mu    sync.RWMutex
	store map[pairKey]matrixPairCacheEntry
}

func NewInMemoryPairCache() MatrixPairCache {
	return &inMemoryPairCache{store: make(map[pairKey]matrixPairCacheEntry)}
}

func (c *inMemoryPairCache) Get(k pairKey) (MatrixEdge, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	it, ok := c.store[k]
	if !ok || time.Now().After(it.ExpiresAt) {
		return MatrixEdge{}, false
	}
	return it.Edge, true
}

func (c *inMemoryPairCache) Set(k pairKey, v MatrixEdge, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.store[k] = matrixPairCacheEntry{Edge: v, ExpiresAt: time.Now().Add(ttl)}
}

// -------------- Mapbox Matrix client (walking profile) ---------------

type WalkingMatrixService interface {
	ComputeMatrix(ctx context.Context, points []MatrixPoint) (WalkingMatrix, error)
}

type MapboxMatrixClient struct {
	HTTP        *http.Client
	AccessToken string
	Cache       MatrixPairCache
	DefaultTTL  time.Duration
	Profile     string // "walking"
}

func NewMapboxMatrixClient(accessToken string, cache MatrixPairCache) *MapboxMatrixClient {
	return &MapboxMatrixClient{
		HTTP:        &http.Client{Timeout: 15 * time.Second},
		AccessToken: accessToken,
		Cache:       cache,
		DefaultTTL:  7 * 24 * time.Hour,
		Profile:     "walking",
	}
}

func (c *MapboxMatrixClient) ComputeMatrix(ctx context.Context, points []MatrixPoint) (WalkingMatrix, error) {
	n := len(points)
	if n == 0 {
		return WalkingMatrix{}, nil
	}

	mode := c.Profile
	mat := make(WalkingMatrix, n)
	needCall := false

	for _, p := range points {
		mat[p.ID] = make(map[string]MatrixEdge, n)
	}

	// 1) Serve what we can from the pair cache.
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				mat[points[i].ID][points[j].ID] = MatrixEdge{}
				continue
			}
			k := pairKey{Mode: mode, A: points[i].ID, B: points[j].ID}
			if v, ok := c.Cache.Get(k); ok {
				mat[points[i].ID][points[j].ID] = v
			} else {
				needCall = true
			}
		}
	}

	if !needCall {
		return mat, nil
	}

	// 2) One Matrix call for the whole point set.
	coords := make([]string, 0, n)
	for _, p := range points {
		coords = append(coords, fmt.Sprintf("%f,%f", p.Lng, p.Lat))
	}
	coordStr := strings.Join(coords, ";")

	u := url.URL{
		Scheme: "https",
		Host:   "api.mapbox.com",
		Path:   fmt.Sprintf("/directions-matrix/v1/mapbox/%s/%s", mode, coordStr),
	}
	q := url.Values{}
	q.Set("annotations", "distance,duration")
	q.Set("sources", "all")
	q.Set("destinations", "all")
	q.Set("access_token", c.AccessToken)
	u.RawQuery = q.Encode()

	req, _ := http.NewRequestWithContext(ctx, "GET", u.String(), nil)
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("mapbox matrix http error: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return nil, fmt.Errorf("mapbox matrix bad status: %s", resp.Status)
	}

	var payload struct {
		Distances [][]*float64 `json:"distances"`
		Durations [][]*float64 `json:"durations"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("mapbox decode: %w", err)
	}

	// 3) Fill the matrix and warm the cache.
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				mat[points[i].ID][points[j].ID] = MatrixEdge{}
				continue
			}
			edge := MatrixEdge{
				DistanceMeters:  roundedCell(payload.Distances, i, j),
				DurationSeconds: roundedCell(payload.Durations, i, j),
			}
			mat[points[i].ID][points[j].ID] = edge
			c.Cache.Set(pairKey{Mode: mode, A: points[i].ID, B: points[j].ID}, edge, c.DefaultTTL)
		}
	}

	return mat, nil
}

func roundedCell(cells [][]*float64, i, j int) int {
	if cells == nil || i >= len(cells) || j >= len(cells[i]) || cells[i][j] == nil {
		return 0
	}
	return int(*cells[i][j] + 0.5)
}
