package entity

// Summary — агрегированная статистика уверенности по одному изображению.
type Summary struct {
	Count         int     // число рамок до фильтрации
	AvgConfidence float64 // среднее арифметическое уверенности
	MaxConfidence float64
	MinConfidence float64
}

// Summarize считает статистику по результату детекции.
// Пустой или nil результат даёт нулевую статистику — это штатный случай, не ошибка.
// Округления нет: форматирование — забота вывода.
func Summarize(r *DetectionResult) Summary {
	if r == nil || len(r.Scores) == 0 {
		return Summary{Count: r.Count()}
	}

	sum := 0.0
	maxScore := r.Scores[0]
	minScore := r.Scores[0]
	for _, score := range r.Scores {
		sum += score
		if score > maxScore {
			maxScore = score
		}
		if score < minScore {
			minScore = score
		}
	}

	return Summary{
		Count:         r.Count(),
		AvgConfidence: sum / float64(len(r.Scores)),
		MaxConfidence: maxScore,
		MinConfidence: minScore,
	}
}
