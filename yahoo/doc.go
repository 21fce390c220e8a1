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

// Package yahoo is a client for the undocumented Yahoo Finance HTTP API.
//
// It fetches quotes, historic price series and similar securities, and turns
// the responses into the records of the finance package. Endpoints which
// require authentication receive a crumb, obtained once per Client with a
// cookie-then-token handshake and cached until reset.
//
// A Client is injected into the context, similarly to the HTTP client of the
// fetch package:
//
//	ctx = fetch.UseClient(ctx, httpClient) // with a cookie jar
//	ctx = yahoo.UseClient(ctx, yahoo.NewClient(yahoo.DefaultConfig(), nil))
//	q, err := yahoo.GetClient(ctx).Quote(ctx, "AAPL")
//
// The Client is not safe for concurrent use.
package yahoo
