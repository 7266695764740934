package server

import (
	"Moodring/handler"
)

type Handlers struct {
	Feed    *handler.Feed
	Profile *handler.Profile
	CheckIn *handler.CheckIn
	Block   *handler.Block
}
