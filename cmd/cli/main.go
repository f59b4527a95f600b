package main

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gorilla/websocket"

	"fateshift/pkg/models"
)

const defaultBaseURL = "http://localhost:8080"

type tokenData struct {
	Token string `json:"token"`
}

type authResponse struct {
	Token string `json:"token"`
}

type profileListResponse struct {
	Total  int                   `json:"total"`
	Limit  int                   `json:"limit"`
	Offset int                   `json:"offset"`
	Items  []models.BirthProfile `json:"items"`
}

type timelineResponse struct {
	BirthDate string                  `json:"birth_date"`
	Total     int                     `json:"total"`
	Items     []models.CriticalPeriod `json:"items"`
}

func main() {
	global := flag.NewFlagSet("fateshift", flag.ExitOnError)
	baseURL := global.String("api", defaultBaseURL, "API base URL")
	tokenPath := global.String("token", defaultTokenPath(), "token file path")
	if err := global.Parse(os.Args[1:]); err != nil {
		log.Fatalf("parse flags: %v", err)
	}
	args := global.Args()
	if len(args) == 0 {
		printUsage()
		os.Exit(1)
	}

	ctx := context.Background()
	cmd := args[0]
	sub := ""
	if len(args) > 1 {
		sub = args[1]
	}

	client := &http.Client{Timeout: 15 * time.Second}

	switch cmd {
	case "auth":
		handleAuth(ctx, client, *baseURL, *tokenPath, sub, args[2:])
	case "insight":
		handleInsight(ctx, client, *baseURL, sub, args[2:])
	case "profile":
		handleProfile(ctx, client, *baseURL, *tokenPath, sub, args[2:])
	case "reading":
		handleReading(ctx, client, *baseURL, *tokenPath, sub, args[2:])
	case "watch":
		handleWatch(*baseURL, args[1:])
	case "export":
		handleExport(ctx, client, *baseURL, sub, args[2:])
	default:
		printUsage()
		os.Exit(1)
	}
}

func handleAuth(ctx context.Context, client *http.Client, baseURL, tokenPath, sub string, args []string) {
	switch sub {
	case "login":
		fs := flag.NewFlagSet("auth login", flag.ExitOnError)
		email := fs.String("email", "", "email address")
		password := fs.String("password", "", "password")
		_ = fs.Parse(args)

		if *email == "" || *password == "" {
			log.Fatal("email and password are required")
		}

		payload := map[string]string{"email": *email, "password": *password}
		var resp authResponse
		if err := doJSON(ctx, client, http.MethodPost, baseURL+"/auth/login", "", payload, &resp); err != nil {
			log.Fatalf("login failed: %v", err)
		}
		if err := saveToken(tokenPath, resp.Token); err != nil {
			log.Fatalf("save token: %v", err)
		}
		fmt.Println("logged in")
	case "register":
		fs := flag.NewFlagSet("auth register", flag.ExitOnError)
		username := fs.String("username", "", "username")
		email := fs.String("email", "", "email address")
		password := fs.String("password", "", "password")
		_ = fs.Parse(args)

		if *username == "" || *email == "" || *password == "" {
			log.Fatal("username, email, and password are required")
		}

		payload := map[string]string{"username": *username, "email": *email, "password": *password}
		var resp authResponse
		if err := doJSON(ctx, client, http.MethodPost, baseURL+"/auth/register", "", payload, &resp); err != nil {
			log.Fatalf("register failed: %v", err)
		}
		if err := saveToken(tokenPath, resp.Token); err != nil {
			log.Fatalf("save token: %v", err)
		}
		fmt.Println("registered and logged in")
	case "logout":
		if err := clearToken(tokenPath); err != nil {
			log.Fatalf("logout failed: %v", err)
		}
		fmt.Println("logged out")
	default:
		log.Fatal("usage: fateshift auth <login|register|logout>")
	}
}

func handleInsight(ctx context.Context, client *http.Client, baseURL, sub string, args []string) {
	switch sub {
	case "analyze":
		fs := flag.NewFlagSet("insight analyze", flag.ExitOnError)
		date := fs.String("date", "", "birth date YYYY-MM-DD")
		birthTime := fs.String("time", "", "birth time HH:MM (optional)")
		tz := fs.String("tz", "", "IANA timezone (optional)")
		_ = fs.Parse(args)
		if *date == "" {
			log.Fatal("date is required")
		}

		payload := map[string]string{"date": *date}
		if *birthTime != "" {
			payload["time"] = *birthTime
		}
		if *tz != "" {
			payload["tz"] = *tz
		}

		var resp map[string]any
		if err := doJSON(ctx, client, http.MethodPost, baseURL+"/insights/analysis", "", payload, &resp); err != nil {
			log.Fatalf("analyze failed: %v", err)
		}
		printJSON(resp)
	case "timeline", "returns", "dasha":
		fs := flag.NewFlagSet("insight "+sub, flag.ExitOnError)
		date := fs.String("date", "", "birth date YYYY-MM-DD")
		_ = fs.Parse(args)
		if *date == "" {
			log.Fatal("date is required")
		}

		var resp map[string]any
		endpoint := baseURL + "/insights/" + sub + "?date=" + url.QueryEscape(*date)
		if err := doJSON(ctx, client, http.MethodGet, endpoint, "", nil, &resp); err != nil {
			log.Fatalf("%s failed: %v", sub, err)
		}
		printJSON(resp)
	default:
		log.Fatal("usage: fateshift insight <analyze|timeline|returns|dasha>")
	}
}

func handleProfile(ctx context.Context, client *http.Client, baseURL, tokenPath, sub string, args []string) {
	token := mustToken(tokenPath)
	switch sub {
	case "add":
		fs := flag.NewFlagSet("profile add", flag.ExitOnError)
		name := fs.String("name", "", "profile name")
		date := fs.String("date", "", "birth date YYYY-MM-DD")
		birthTime := fs.String("time", "", "birth time HH:MM")
		place := fs.String("place", "", "birth place")
		tz := fs.String("tz", "", "IANA timezone")
		_ = fs.Parse(args)
		if *name == "" || *date == "" {
			log.Fatal("name and date are required")
		}

		payload := map[string]string{
			"name":        *name,
			"birth_date":  *date,
			"birth_time":  *birthTime,
			"birth_place": *place,
			"timezone":    *tz,
		}
		var resp models.BirthProfile
		if err := doJSON(ctx, client, http.MethodPost, baseURL+"/users/profiles", token, payload, &resp); err != nil {
			log.Fatalf("add failed: %v", err)
		}
		printJSON(resp)
	case "list":
		var resp profileListResponse
		if err := doJSON(ctx, client, http.MethodGet, baseURL+"/users/profiles", token, nil, &resp); err != nil {
			log.Fatalf("list failed: %v", err)
		}
		printJSON(resp)
	case "timeline":
		fs := flag.NewFlagSet("profile timeline", flag.ExitOnError)
		id := fs.String("id", "", "profile id")
		_ = fs.Parse(args)
		if *id == "" {
			log.Fatal("profile id is required")
		}

		var resp map[string]any
		endpoint := baseURL + "/users/profiles/" + url.PathEscape(*id) + "/timeline"
		if err := doJSON(ctx, client, http.MethodGet, endpoint, token, nil, &resp); err != nil {
			log.Fatalf("timeline failed: %v", err)
		}
		printJSON(resp)
	case "remove":
		fs := flag.NewFlagSet("profile remove", flag.ExitOnError)
		id := fs.String("id", "", "profile id")
		_ = fs.Parse(args)
		if *id == "" {
			log.Fatal("profile id is required")
		}

		endpoint := baseURL + "/users/profiles/" + url.PathEscape(*id)
		if err := doJSON(ctx, client, http.MethodDelete, endpoint, token, nil, nil); err != nil {
			log.Fatalf("remove failed: %v", err)
		}
		fmt.Println("removed")
	default:
		log.Fatal("usage: fateshift profile <add|list|timeline|remove>")
	}
}

func handleReading(ctx context.Context, client *http.Client, baseURL, tokenPath, sub string, args []string) {
	token := mustToken(tokenPath)
	switch sub {
	case "save":
		fs := flag.NewFlagSet("reading save", flag.ExitOnError)
		profileID := fs.String("profile-id", "", "profile id")
		note := fs.String("note", "", "note to store with the reading")
		_ = fs.Parse(args)
		if *profileID == "" {
			log.Fatal("profile id is required")
		}

		payload := map[string]string{"profile_id": *profileID, "note": *note}
		var resp models.Reading
		if err := doJSON(ctx, client, http.MethodPost, baseURL+"/users/readings", token, payload, &resp); err != nil {
			log.Fatalf("save failed: %v", err)
		}
		printJSON(resp)
	case "list":
		var resp map[string]any
		if err := doJSON(ctx, client, http.MethodGet, baseURL+"/users/readings", token, nil, &resp); err != nil {
			log.Fatalf("list failed: %v", err)
		}
		printJSON(resp)
	case "remove":
		fs := flag.NewFlagSet("reading remove", flag.ExitOnError)
		id := fs.String("id", "", "reading id")
		_ = fs.Parse(args)
		if *id == "" {
			log.Fatal("reading id is required")
		}

		endpoint := baseURL + "/users/readings/" + url.PathEscape(*id)
		if err := doJSON(ctx, client, http.MethodDelete, endpoint, token, nil, nil); err != nil {
			log.Fatalf("remove failed: %v", err)
		}
		fmt.Println("removed")
	default:
		log.Fatal("usage: fateshift reading <save|list|remove>")
	}
}

// handleWatch streams timeline events over the API's WebSocket endpoint.
func handleWatch(baseURL string, args []string) {
	wsURL, err := websocketURL(baseURL, "/ws")
	if err != nil {
		log.Fatalf("bad base url: %v", err)
	}

	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		log.Fatalf("dial %s: %v", wsURL, err)
	}
	defer conn.Close()

	log.Printf("watching %s (ctrl-c to stop)", wsURL)
	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			log.Fatalf("read: %v", err)
		}
		fmt.Println(strings.TrimSpace(string(msg)))
	}
}

func handleExport(ctx context.Context, client *http.Client, baseURL, sub string, args []string) {
	fs := flag.NewFlagSet("export "+sub, flag.ExitOnError)
	date := fs.String("date", "", "birth date YYYY-MM-DD")
	out := fs.String("out", "", "output path")
	_ = fs.Parse(args)
	if *date == "" {
		log.Fatal("date is required")
	}

	endpoint := baseURL + "/insights/timeline?date=" + url.QueryEscape(*date)
	var resp timelineResponse
	if err := doJSON(ctx, client, http.MethodGet, endpoint, "", nil, &resp); err != nil {
		log.Fatalf("fetch timeline failed: %v", err)
	}

	switch sub {
	case "json":
		path := *out
		if path == "" {
			path = "data/timeline.json"
		}
		if err := writeJSON(path, resp.Items); err != nil {
			log.Fatalf("write json failed: %v", err)
		}
		fmt.Printf("wrote %d periods to %s\n", len(resp.Items), path)
	case "csv":
		path := *out
		if path == "" {
			path = "data/timeline.csv"
		}
		if err := writeCSV(path, resp.Items); err != nil {
			log.Fatalf("write csv failed: %v", err)
		}
		fmt.Printf("wrote %d periods to %s\n", len(resp.Items), path)
	default:
		log.Fatal("usage: fateshift export <json|csv> -date YYYY-MM-DD [-out path]")
	}
}

func writeJSON(path string, items []models.CriticalPeriod) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	b, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}

func writeCSV(path string, items []models.CriticalPeriod) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write([]string{
		"label", "start_date", "end_date", "risk_level", "theme", "advice", "system",
	}); err != nil {
		return err
	}
	for _, item := range items {
		if err := writer.Write([]string{
			item.Label,
			item.StartDate.Format(time.RFC3339),
			item.EndDate.Format(time.RFC3339),
			item.RiskLevel,
			item.Theme,
			item.Advice,
			item.System,
		}); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

func doJSON(ctx context.Context, client *http.Client, method, endpoint, token string, payload any, out any) error {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = strings.NewReader(string(b))
	}
	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode >= 300 {
		return fmt.Errorf("%s %s failed: %s", method, endpoint, strings.TrimSpace(string(data)))
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return err
	}
	return nil
}

func printJSON(v any) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		log.Fatalf("json: %v", err)
	}
	fmt.Println(string(b))
}

func defaultTokenPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "./.fateshift-token.json"
	}
	return filepath.Join(home, ".fateshift", "token.json")
}

func saveToken(path, token string) error {
	if token == "" {
		return errors.New("empty token")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(tokenData{Token: token}, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

func readToken(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	var td tokenData
	if err := json.Unmarshal(data, &td); err != nil {
		return "", err
	}
	return strings.TrimSpace(td.Token), nil
}

func mustToken(path string) string {
	token, err := readToken(path)
	if err != nil {
		log.Fatalf("token not found, please login: %v", err)
	}
	if token == "" {
		log.Fatal("token empty, please login")
	}
	return token
}

func clearToken(path string) error {
	if err := os.Remove(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	return nil
}

func websocketURL(baseURL, path string) (string, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return "", err
	}
	scheme := "ws"
	if u.Scheme == "https" {
		scheme = "wss"
	}
	return (&url.URL{
		Scheme: scheme,
		Host:   u.Host,
		Path:   path,
	}).String(), nil
}

func printUsage() {
	fmt.Println("fateshift <command> [subcommand] [flags]")
	fmt.Println("commands:")
	fmt.Println("  auth login|register|logout")
	fmt.Println("  insight analyze|timeline|returns|dasha")
	fmt.Println("  profile add|list|timeline|remove")
	fmt.Println("  reading save|list|remove")
	fmt.Println("  watch")
	fmt.Println("  export json|csv")
}
