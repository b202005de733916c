// Package server exposes a grid to UI clients over Socket.IO.
//
// Clients emit set, get and snapshot events and receive a result event for
// each. After an edit changes what the grid displays, every connected client
// receives a changed event listing the affected cells. The same HTTP
// listener also answers /health.
package server
