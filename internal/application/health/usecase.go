package health

import (
	"context"
	"fmt"
)

// Checker comprobación de una dependencia externa.
type Checker interface {
	Name() string
	Check(ctx context.Context) error
}

// ReadinessUseCase agrega los checkers; la app está lista solo si todos responden.
type ReadinessUseCase struct {
	checkers []Checker
}

func NewReadinessUseCase(checkers ...Checker) *ReadinessUseCase {
	return &ReadinessUseCase{checkers: checkers}
}

// Ready devuelve el primer fallo, con el nombre del checker.
func (uc *ReadinessUseCase) Ready(ctx context.Context) error {
	for _, ch := range uc.checkers {
		if err := ch.Check(ctx); err != nil {
			return fmt.Errorf("%s: %w", ch.Name(), err)
		}
	}
	return nil
}
