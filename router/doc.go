/*
Package router wires the HTTP routes using Go 1.22+ method+pattern routing.

	GET  /health           liveness check
	GET  /batch            random batch of unpresented polishes
	POST /votes            record a round's pick
	GET  /votes            raw vote log
	GET  /stats/favorites  top winners, brand and finish win rates
	GET  /stats/overview   collection usage journey
	GET  /history          wear history, filterable by brand and date
*/
package router
