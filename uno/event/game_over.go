package event

type GameOverPayload struct {
	Winner int
}

type GameOverListener interface {
	OnGameOver(GameOverPayload)
}
