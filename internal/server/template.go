package server

import (
	"fmt"
	"strings"

	"github.com/jpalmerr/crunchboard/internal/compute"
)

// resultsPlaceholder is the single substitution point in the page template.
const resultsPlaceholder = "{results}"

// pageTemplate is the fixed demonstration page. The results fragment is
// spliced in with a plain string substitution; this is deliberately not a
// templating engine, there is exactly one placeholder and no escaping.
const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Performance Demo</title>
    <style>
        body {
            font-family: Arial, sans-serif;
            max-width: 800px;
            margin: 0 auto;
            padding: 20px;
        }
        button {
            padding: 10px 20px;
            font-size: 16px;
            cursor: pointer;
        }
    </style>
</head>
<body>
    <h1>Performance Demonstration</h1>
    <form action="/" method="post">
        <button type="submit">Run Heavy Computation</button>
    </form>
    {results}
</body>
</html>`

// renderPage splices the results fragment into the page template.
// An empty fragment yields the idle page served for GET requests.
func renderPage(results string) string {
	return strings.Replace(pageTemplate, resultsPlaceholder, results, 1)
}

// renderResults formats the statistics fragment for a completed run:
// elapsed seconds to two decimals, the prime count, the trailing primes as
// a bracketed list, and the matrix product sum.
func renderResults(res compute.Result) string {
	return fmt.Sprintf(`<h2>Results:</h2>
<p>Time taken: %.2f seconds</p>
<h3>Statistics:</h3>
<ul>
<li>Number of primes found: %d</li>
<li>Last few primes: %s</li>
<li>Matrix multiplication sum: %d</li>
</ul>`,
		res.Elapsed.Seconds(),
		res.PrimeCount,
		compute.FormatPrimes(res.LastPrimes),
		res.MatrixSum,
	)
}
