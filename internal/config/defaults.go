package config

import "time"

// Default values for configuration
const (
	DefaultLogLevel = "info"
	DefaultLogJSON  = false

	DefaultCompletionProvider = "http"
	DefaultCompletionURL      = "https://api.openai.com/v1/engines/davinci/completions"
	DefaultCompletionModel    = "gemini-2.0-flash"
	DefaultOpenAIModel        = "gpt-3.5-turbo-instruct"
	DefaultCompletionTimeout  = 2 * time.Minute

	DefaultTrainingPlanPrompt      = "Составь тренировочный план для человека среднего уровня подготовки."
	DefaultTrainingPlanMaxTokens   = 500
	DefaultTrainingPlanTemperature = 0.7

	DefaultExercisePrompt      = "Предложи несколько упражнений для тренировки верхней части тела."
	DefaultExerciseMaxTokens   = 200
	DefaultExerciseTemperature = 0.8

	// DefaultCommandsSyncSchedule runs at the top of every hour (seconds field first).
	DefaultCommandsSyncSchedule = "0 0 * * * *"
)

// DefaultMessages are the replies used when the config file sets none.
var DefaultMessages = MessagesConfig{
	Start: "Привет! Я бот для фитнеса и ИИ-интеграции.\n" +
		"Могу помочь составить план тренировок, подсказать упражнения " +
		"или рассказать про правильное питание.",
	Help: "Вот мои команды:\n" +
		"/start - начать работу\n" +
		"/help - показать список команд\n" +
		"/train - получить тренировочный план\n" +
		"/food - узнать про правильное питание",
	Food: "Для правильного питания важно сбалансированное меню: овощи, фрукты, белок, " +
		"сложные углеводы и полезные жиры. Пейте достаточно воды!",
	Greeting:      "Привет! Чем займёмся?",
	NotUnderstood: "Не совсем понял тебя. Могу помочь с тренировочным планом или питанием.",
	Fallback:      "Упс, кажется, сейчас сервис недоступен.",
}

// defaults is applied to viper before the file and environment are read.
var defaults = map[string]any{
	"logger.level": DefaultLogLevel,
	"logger.json":  DefaultLogJSON,

	"telegram.token": "",

	"completion.provider":        DefaultCompletionProvider,
	"completion.url":             DefaultCompletionURL,
	"completion.api_key":         "",
	"completion.model":           DefaultCompletionModel,
	"completion.openai_model":    DefaultOpenAIModel,
	"completion.gemini_base_url": "",
	"completion.openai_base_url": "",
	"completion.timeout":         DefaultCompletionTimeout,

	"completion.prompts.training_plan.text":              DefaultTrainingPlanPrompt,
	"completion.prompts.training_plan.max_tokens":        DefaultTrainingPlanMaxTokens,
	"completion.prompts.training_plan.temperature":       DefaultTrainingPlanTemperature,
	"completion.prompts.exercise_suggestion.text":        DefaultExercisePrompt,
	"completion.prompts.exercise_suggestion.max_tokens":  DefaultExerciseMaxTokens,
	"completion.prompts.exercise_suggestion.temperature": DefaultExerciseTemperature,

	"messages.start":          DefaultMessages.Start,
	"messages.help":           DefaultMessages.Help,
	"messages.food":           DefaultMessages.Food,
	"messages.greeting":       DefaultMessages.Greeting,
	"messages.not_understood": DefaultMessages.NotUnderstood,
	"messages.fallback":       DefaultMessages.Fallback,

	"scheduler.tasks.commands_sync.enabled":  true,
	"scheduler.tasks.commands_sync.schedule": DefaultCommandsSyncSchedule,
}
