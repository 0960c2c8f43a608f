package cli

import (
	"github.com/alexanderramin/testament/internal/domain"
	"github.com/spf13/pflag"
)

// difficultyFlag validates --difficulty as it is parsed.
type difficultyFlag domain.Difficulty

var _ pflag.Value = (*difficultyFlag)(nil)

func (f *difficultyFlag) String() string { return string(*f) }
func (f *difficultyFlag) Type() string   { return "difficulty" }

func (f *difficultyFlag) Set(s string) error {
	d, err := domain.ParseDifficulty(s)
	if err != nil {
		return err
	}
	*f = difficultyFlag(d)
	return nil
}

// categoryFlag parses --category; unset means both testaments.
type categoryFlag domain.Category

var _ pflag.Value = (*categoryFlag)(nil)

func (f *categoryFlag) String() string {
	if domain.Category(*f) == domain.CategoryUnknown {
		return ""
	}
	return domain.Category(*f).String()
}

func (f *categoryFlag) Type() string { return "testament" }

func (f *categoryFlag) Set(s string) error {
	c, err := domain.ParseCategory(s)
	if err != nil {
		return err
	}
	*f = categoryFlag(c)
	return nil
}
