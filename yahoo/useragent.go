// Copyright 2022 Stock Parfait

// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at

//     http://www.apache.org/licenses/LICENSE-2.0

// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package yahoo

import (
	_ "embed"
	"encoding/json"
	"net/http"

	"github.com/stockparfait/errors"

	"golang.org/x/exp/rand"
)

//go:embed useragents.json
var userAgentsJSON []byte

// ParseUserAgents decodes a JSON list of user agent strings. The list must
// not be empty.
func ParseUserAgents(data []byte) ([]string, error) {
	var agents []string
	if err := json.Unmarshal(data, &agents); err != nil {
		return nil, errors.Annotate(err, "failed to decode user agents")
	}
	if len(agents) == 0 {
		return nil, errors.Reason("no user agents found")
	}
	return agents, nil
}

// UserAgents returns the built-in list of browser user agents.
func UserAgents() []string {
	agents, err := ParseUserAgents(userAgentsJSON)
	if err != nil {
		panic(errors.Annotate(err, "embedded useragents.json is broken"))
	}
	return agents
}

// RandomUserAgent picks one of the agents at random.
func RandomUserAgent(agents []string) string {
	return agents[rand.Intn(len(agents))]
}

// userAgentTransport sets a random User-Agent header on every request which
// doesn't have one.
type userAgentTransport struct {
	base   http.RoundTripper
	agents []string
}

var _ http.RoundTripper = &userAgentTransport{}

func (t *userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get("User-Agent") != "" {
		return t.base.RoundTrip(req)
	}
	r := req.Clone(req.Context())
	r.Header.Set("User-Agent", RandomUserAgent(t.agents))
	return t.base.RoundTrip(r)
}

// WithUserAgents returns a shallow copy of the HTTP client which sends a
// random user agent from the list with every request.
func WithUserAgents(c *http.Client, agents []string) *http.Client {
	c2 := *c
	base := c.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	c2.Transport = &userAgentTransport{base: base, agents: agents}
	return &c2
}
