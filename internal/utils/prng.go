// internal/utils/prng.go
package utils

import (
	"image/color"
	"math/rand"
	"time"
)

// PRNGService — обёртка над стандартным генератором случайных чисел Go,
// которая позволяет использовать предсказуемый (seeded) рандом во всей игре.
type PRNGService struct {
	rng *rand.Rand
}

// NewPRNGService создаёт новый экземпляр сервиса с указанным сидом.
// Если сид равен 0, используется текущее время.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	source := rand.NewSource(seed)
	return &PRNGService{
		rng: rand.New(source),
	}
}

// Intn возвращает случайное целое число в диапазоне [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// Float64 возвращает случайное число с плавающей точкой в диапазоне [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// Range возвращает случайное число в диапазоне [min, max).
func (s *PRNGService) Range(min, max float64) float64 {
	return min + s.rng.Float64()*(max-min)
}

// RGB возвращает непрозрачный цвет, каждый канал которого выбран
// равномерно из [0, 255].
func (s *PRNGService) RGB() color.RGBA {
	return color.RGBA{
		R: uint8(s.Intn(256)),
		G: uint8(s.Intn(256)),
		B: uint8(s.Intn(256)),
		A: 255,
	}
}
