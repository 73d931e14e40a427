package i18n

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestMatch(t *testing.T) {
	assert.Equal(t, language.AmericanEnglish, Match("en-US,en;q=0.9"))
	assert.Equal(t, language.AmericanEnglish, Match("en"))
	assert.Equal(t, language.SimplifiedChinese, Match("zh-CN"))
	assert.Equal(t, Default(), Match(""))
}

func TestTranslate(t *testing.T) {
	en := WithLanguage(context.Background(), language.AmericanEnglish)
	zh := WithLanguage(context.Background(), language.SimplifiedChinese)

	assert.Equal(t, "All data", T(en, "user_view.all_data"))
	assert.Equal(t, "全部数据", T(zh, "user_view.all_data"))
	assert.Equal(t, "Receiver u-del has been removed or is not a project member",
		T(en, "message_task.receiver_removed", "u-del"))
}

func TestTranslateUnknownKeyReturnsKey(t *testing.T) {
	assert.Equal(t, "user_view.unknown", T(context.Background(), "user_view.unknown"))
}

func TestCatalogsHaveSameKeys(t *testing.T) {
	for key := range zhCN {
		_, ok := enUS[key]
		assert.True(t, ok, "missing en-US message for %s", key)
	}
	assert.Len(t, enUS, len(zhCN))
}
