package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"math/rand/v2"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	vegeta "github.com/tsenart/vegeta/v12/lib"
)

var (
	targetHost = flag.String("host", "http://localhost:8080", "ledger server base URL")
	rps        = flag.Int("rps", 50, "requests per second")
	duration   = flag.Duration("duration", time.Minute, "attack duration")
	groupCount = flag.Int("groups", 20, "groups to seed")
	userCount  = flag.Int("users", 10, "users per group")
)

type member struct {
	group string
	user  string
}

var (
	groups  []string
	members []member
	httpc   = &http.Client{Timeout: 10 * time.Second}
	logger  = logrus.New()
)

func postJSON(path string, body any) (int, error) {
	b, err := json.Marshal(body)
	if err != nil {
		return 0, err
	}
	resp, err := httpc.Post(*targetHost+path, "application/json", bytes.NewReader(b))
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	return resp.StatusCode, nil
}

// Seed
func seedData() error {
	logger.Info("Seeding: creating groups and users...")

	for g := 1; g <= *groupCount; g++ {
		groupName := fmt.Sprintf("group-%02d", g)
		status, err := postJSON("/group/add", map[string]string{"group_name": groupName})
		if err != nil {
			return err
		}
		if status >= 400 {
			logger.WithField("status", status).Warn("group/add failed")
		}
		groups = append(groups, groupName)

		for u := 1; u <= *userCount; u++ {
			userName := fmt.Sprintf("user-%d-%d", g, u)
			status, err := postJSON("/user/add", map[string]string{
				"group_name": groupName,
				"user_name":  userName,
			})
			if err != nil {
				return err
			}
			if status >= 400 {
				logger.WithField("status", status).Warn("user/add failed")
			}
			members = append(members, member{group: groupName, user: userName})
		}
	}

	logger.WithFields(logrus.Fields{
		"groups": len(groups),
		"users":  len(members),
	}).Info("Seed completed")
	return nil
}

func query(path string, params map[string]string) string {
	v := url.Values{}
	for k, p := range params {
		v.Set(k, p)
	}
	return *targetHost + path + "?" + v.Encode()
}

// Targeter
func makeTargeter() vegeta.Targeter {
	jsonHeader := http.Header{"Content-Type": {"application/json"}}
	acceptHeader := http.Header{"Accept": {"application/json"}}

	return func(t *vegeta.Target) error {
		r := rand.Float64()
		group := groups[rand.IntN(len(groups))]

		t.Method = http.MethodGet
		t.Body = nil
		t.Header = acceptHeader

		switch {
		// 40% GET user/list
		case r < 0.40:
			t.URL = query("/user/list", map[string]string{"group_name": group})

		// 20% GET transaction/recent
		case r < 0.60:
			t.URL = query("/transaction/recent", map[string]string{
				"group_name": group,
				"limit":      fmt.Sprint(1 + rand.IntN(20)),
			})

		// 10% GET user/underPaid
		case r < 0.70:
			t.URL = query("/user/underPaid", map[string]string{"group_name": group})

		// 10% GET user/balance
		case r < 0.80:
			m := members[rand.IntN(len(members))]
			t.URL = query("/user/balance", map[string]string{"group_name": m.group, "user_name": m.user})

		// 20% POST transaction/add
		default:
			m := members[rand.IntN(len(members))]
			body, err := json.Marshal(map[string]any{
				"group_name": m.group,
				"user_name":  m.user,
				"amount":     float64(rand.IntN(20000)-10000) / 100,
			})
			if err != nil {
				return err
			}
			t.Method = http.MethodPost
			t.URL = *targetHost + "/transaction/add"
			t.Body = body
			t.Header = jsonHeader
		}
		return nil
	}
}

// Attack
func runAttack() vegeta.Metrics {
	rate := vegeta.Rate{Freq: *rps, Per: time.Second}
	attacker := vegeta.NewAttacker()

	var metrics vegeta.Metrics

	logger.WithFields(logrus.Fields{
		"target":   *targetHost,
		"rps":      *rps,
		"duration": *duration,
	}).Info("Starting attack")
	for res := range attacker.Attack(makeTargeter(), rate, *duration, "ledger-load-test") {
		metrics.Add(res)
	}
	metrics.Close()
	return metrics
}

func main() {
	flag.Parse()

	if err := seedData(); err != nil {
		logger.Fatalf("Seed failed: %v", err)
	}

	metrics := runAttack()

	fmt.Println("=== Results ===")
	fmt.Printf("Requests: %d\n", metrics.Requests)
	fmt.Printf("Success rate: %.4f%%\n", metrics.Success*100)
	fmt.Printf("Latency mean: %s\n", metrics.Latencies.Mean)
	fmt.Printf("Latency P95: %s\n", metrics.Latencies.P95)
	fmt.Printf("Latency P99: %s\n", metrics.Latencies.P99)
	for code, n := range metrics.StatusCodes {
		fmt.Printf("Status %s: %d\n", code, n)
	}

	if metrics.Success < 0.99 {
		os.Exit(1)
	}
}
