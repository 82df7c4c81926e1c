// Package config provides configuration management for mdforge
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// KeywordTables carries the locale-specific keyword lists used by the
// question detector and the content analyzer. Keeping them in one
// loadable table makes the heuristics testable and swappable per locale
// instead of scattering literals through the detection code.
type KeywordTables struct {
	// QuestionPrefixes match explicit question markers like "Q:" or
	// "Question 3:". Matched case-insensitively at line start.
	QuestionPrefixes []string `yaml:"question_prefixes" json:"question_prefixes" mapstructure:"question_prefixes" validate:"min=1"`

	// Imperatives open paragraph-style prompts ("describe", "explain")
	Imperatives []string `yaml:"imperatives" json:"imperatives" mapstructure:"imperatives" validate:"min=1"`

	// RatingKeywords mark scale questions when a digit is also present
	RatingKeywords []string `yaml:"rating_keywords" json:"rating_keywords" mapstructure:"rating_keywords" validate:"min=1"`

	// CorrectKeywords mark an answer-key line inside an option window
	CorrectKeywords []string `yaml:"correct_keywords" json:"correct_keywords" mapstructure:"correct_keywords" validate:"min=1"`

	// QuizKeywords suggest graded quiz intent
	QuizKeywords []string `yaml:"quiz_keywords" json:"quiz_keywords" mapstructure:"quiz_keywords" validate:"min=1"`

	// SurveyKeywords suggest survey intent
	SurveyKeywords []string `yaml:"survey_keywords" json:"survey_keywords" mapstructure:"survey_keywords" validate:"min=1"`

	// FeedbackKeywords suggest a feedback form
	FeedbackKeywords []string `yaml:"feedback_keywords" json:"feedback_keywords" mapstructure:"feedback_keywords" validate:"min=1"`

	// RegistrationKeywords suggest a registration form
	RegistrationKeywords []string `yaml:"registration_keywords" json:"registration_keywords" mapstructure:"registration_keywords" validate:"min=1"`

	// AcademicKeywords are section names that open academic documents
	AcademicKeywords []string `yaml:"academic_keywords" json:"academic_keywords" mapstructure:"academic_keywords" validate:"min=1"`

	// ReportKeywords are the openers that classify a document as a
	// report; a narrower list than AcademicKeywords
	ReportKeywords []string `yaml:"report_keywords" json:"report_keywords" mapstructure:"report_keywords" validate:"min=1"`

	// LetterKeywords open correspondence ("dear", "sincerely")
	LetterKeywords []string `yaml:"letter_keywords" json:"letter_keywords" mapstructure:"letter_keywords" validate:"min=1"`

	// AnswerKeyKeywords mark an answer-key block in quiz material
	AnswerKeyKeywords []string `yaml:"answer_key_keywords" json:"answer_key_keywords" mapstructure:"answer_key_keywords" validate:"min=1"`
}

// AnalyzerConfig tunes the content analyzer and question detector.
type AnalyzerConfig struct {
	// OptionScanWindow is how many lines after a question line are
	// scanned for options and correct-answer markers
	OptionScanWindow int `yaml:"option_scan_window" json:"option_scan_window" mapstructure:"option_scan_window" validate:"min=1"`

	// MaxOptions caps collected options per question
	MaxOptions int `yaml:"max_options" json:"max_options" mapstructure:"max_options" validate:"min=1"`

	// MaxBullets caps bullets drawn from a section body per slide
	MaxBullets int `yaml:"max_bullets" json:"max_bullets" mapstructure:"max_bullets" validate:"min=1"`

	// MaxSentenceBullets caps sentences used as pseudo-bullets when a
	// section body has no explicit bullet lines
	MaxSentenceBullets int `yaml:"max_sentence_bullets" json:"max_sentence_bullets" mapstructure:"max_sentence_bullets" validate:"min=1"`

	// WordsPerPage drives the estimated page count
	WordsPerPage int `yaml:"words_per_page" json:"words_per_page" mapstructure:"words_per_page" validate:"min=1"`

	// Keywords are the locale keyword tables
	Keywords KeywordTables `yaml:"keywords" json:"keywords" mapstructure:"keywords"`
}

// DefaultAnalyzerConfig returns the built-in configuration with English,
// Spanish and French keyword variants.
func DefaultAnalyzerConfig() *AnalyzerConfig {
	return &AnalyzerConfig{
		OptionScanWindow:   15,
		MaxOptions:         10,
		MaxBullets:         6,
		MaxSentenceBullets: 4,
		WordsPerPage:       250,
		Keywords: KeywordTables{
			QuestionPrefixes: []string{"q", "question", "pregunta"},
			Imperatives: []string{
				"describe", "explain", "elaborate", "discuss", "summarize",
				"explica", "describa", "expliquez", "décrivez",
			},
			RatingKeywords: []string{
				"rate", "rating", "scale", "on a scale",
				"escala", "califica", "échelle", "notez",
			},
			CorrectKeywords: []string{
				"answer:", "correct:", "correct answer:",
				"respuesta:", "réponse:",
			},
			QuizKeywords: []string{
				"quiz", "test", "exam", "examen", "prueba", "contrôle",
			},
			SurveyKeywords: []string{
				"survey", "feedback", "rating", "questionnaire",
				"encuesta", "sondage",
			},
			FeedbackKeywords: []string{
				"feedback", "comments", "comentarios", "commentaires",
			},
			RegistrationKeywords: []string{
				"registration", "register", "sign up", "signup",
				"inscripción", "inscription",
			},
			AcademicKeywords: []string{
				"abstract", "introduction", "methodology", "results",
				"conclusion", "references",
			},
			ReportKeywords: []string{
				"abstract", "introduction", "conclusion", "references",
			},
			LetterKeywords: []string{
				"dear", "sincerely", "regards",
				"estimado", "estimada", "atentamente", "cher", "chère", "cordialement",
			},
			AnswerKeyKeywords: []string{
				"answer key", "answers:", "clave de respuestas", "corrigé",
			},
		},
	}
}

// Validate validates the configuration
func (c *AnalyzerConfig) Validate() error {
	return validator.New().Struct(c)
}

// FromYAMLFile loads configuration from a YAML file
func (c *AnalyzerConfig) FromYAMLFile(path string) error {
	return c.fromFile(path, "yaml")
}

// FromJSONFile loads configuration from a JSON file
func (c *AnalyzerConfig) FromJSONFile(path string) error {
	return c.fromFile(path, "json")
}

func (c *AnalyzerConfig) fromFile(path, format string) error {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType(format)

	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	if err := v.Unmarshal(c); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return c.Validate()
}

// ToYAMLFile saves configuration to a YAML file
func (c *AnalyzerConfig) ToYAMLFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	return os.WriteFile(path, data, 0644)
}
