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

package finance

// TestQuoteJSON is a quote response for AAPL as returned by the provider.
// For use in tests.
const TestQuoteJSON = `{"quoteResponse":{"result":[{"fullExchangeName":"NasdaqGS","symbol":"AAPL","fiftyTwoWeekLowChangePercent":{"raw":0.42941135,"fmt":"42.94%"},"gmtOffSetMilliseconds":-14400000,"regularMarketOpen":{"raw":173.8,"fmt":"173.80"},"language":"en-US","regularMarketTime":{"raw":1696622402,"fmt":"4:00PM EDT"},"regularMarketChangePercent":{"raw":1.4750453,"fmt":"1.48%"},"uuid":"8b10e4ae-9eeb-3684-921a-9ab27e4d87aa","quoteType":"EQUITY","regularMarketDayRange":{"raw":"173.18 - 177.99","fmt":"173.18 - 177.99"},"fiftyTwoWeekLowChange":{"raw":53.320007,"fmt":"53.32"},"fiftyTwoWeekHighChangePercent":{"raw":-0.104625896,"fmt":"-10.46%"},"regularMarketDayHigh":{"raw":177.99,"fmt":"177.99"},"typeDisp":"Equity","tradeable":false,"currency":"USD","sharesOutstanding":{"raw":15634199552,"fmt":"15.634B","longFmt":"15,634,199,552"},"fiftyTwoWeekHigh":{"raw":198.23,"fmt":"198.23"},"regularMarketPreviousClose":{"raw":174.91,"fmt":"174.91"},"exchangeTimezoneName":"America/New_York","fiftyTwoWeekHighChange":{"raw":-20.73999,"fmt":"-20.74"},"marketCap":{"raw":2774914039808,"fmt":"2.775T","longFmt":"2,774,914,039,808"},"regularMarketChange":{"raw":2.5800018,"fmt":"2.58"},"fiftyTwoWeekRange":{"raw":"124.17 - 198.23","fmt":"124.17 - 198.23"},"cryptoTradeable":false,"exchangeDataDelayedBy":0,"firstTradeDateMilliseconds":345479400000,"exchangeTimezoneShortName":"EDT","fiftyTwoWeekLow":{"raw":124.17,"fmt":"124.17"},"customPriceAlertConfidence":"HIGH","regularMarketPrice":{"raw":177.49,"fmt":"177.49"},"marketState":"PRE","regularMarketVolume":{"raw":57266675,"fmt":"57.267M","longFmt":"57,266,675"},"market":"us_market","quoteSourceName":"Delayed Quote","messageBoardId":"finmb_24937","priceHint":2,"regularMarketDayLow":{"raw":173.18,"fmt":"173.18"},"exchange":"NMS","sourceInterval":15,"shortName":"Apple Inc.","region":"US","triggerable":true,"corporateActions":[],"longName":"Apple Inc."}],"error":null}}`

// TestChartJSON is a daily chart response for GS with 6 samples. For use in
// tests.
const TestChartJSON = `{"chart":{"result":[{"meta":{"currency":"USD","symbol":"GS","exchangeName":"NYQ","instrumentType":"EQUITY","firstTradeDate":925824600,"regularMarketTime":1696881602,"gmtoffset":-14400,"timezone":"EDT","exchangeTimezoneName":"America/New_York","regularMarketPrice":312.61,"chartPreviousClose":323.57,"priceHint":2,"currentTradingPeriod":{"pre":{"timezone":"EDT","start":1696924800,"end":1696944600,"gmtoffset":-14400},"regular":{"timezone":"EDT","start":1696944600,"end":1696968000,"gmtoffset":-14400},"post":{"timezone":"EDT","start":1696968000,"end":1696982400,"gmtoffset":-14400}},"dataGranularity":"1d","range":"","validRanges":["1d","5d","1mo","3mo","6mo","1y","2y","5y","10y","ytd","max"]},"timestamp":[1696253400,1696339800,1696426200,1696512600,1696599000,1696858200],"indicators":{"quote":[{"low":[317.1000061035156,304.3900146484375,303.4800109863281,304.2099914550781,307.1700134277344,308.3699951171875],"volume":[1303800,3118600,1872000,1584600,1595100,1094400],"open":[322.0299987792969,315.2699890136719,304.8500061035156,307.3599853515625,308.1099853515625,308.8999938964844],"close":[318.5,306.1199951171875,308.6000061035156,310.5,312.4800109863281,312.6099853515625],"high":[323.5799865722656,315.67999267578125,309.05999755859375,310.54998779296875,315.32000732421875,313.4800109863281]}],"adjclose":[{"adjclose":[318.5,306.1199951171875,308.6000061035156,310.5,312.4800109863281,312.6099853515625]}]}}],"error":null}}`

// TestSimilarJSON is a recommendations response for AMD. For use in tests.
const TestSimilarJSON = `{"finance":{"result":[{"symbol":"AMD","recommendedSymbols":[{"symbol":"NVDA","score":0.279067},{"symbol":"TSLA","score":0.191081},{"symbol":"INTC","score":0.189413},{"symbol":"META","score":0.182947},{"symbol":"NFLX","score":0.181781}]}],"error":null}}`
