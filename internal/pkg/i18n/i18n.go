// Package i18n 提供请求级别的文案翻译
package i18n

import (
	"context"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

type ctxKey struct{}

var (
	supported  = []language.Tag{language.SimplifiedChinese, language.AmericanEnglish}
	matcher    = language.NewMatcher(supported)
	builder    = catalog.NewBuilder(catalog.Fallback(language.SimplifiedChinese))
	defaultTag = language.SimplifiedChinese
)

func init() {
	for key, msg := range zhCN {
		_ = builder.SetString(language.SimplifiedChinese, key, msg)
	}
	for key, msg := range enUS {
		_ = builder.SetString(language.AmericanEnglish, key, msg)
	}
}

// SetDefault 设置默认语言，无法解析时保持原值
func SetDefault(lang string) {
	if tag, err := language.Parse(lang); err == nil {
		defaultTag = Match(tag.String())
	}
}

// Default 返回默认语言
func Default() language.Tag {
	return defaultTag
}

// Match 将 Accept-Language 头匹配到支持的语言
func Match(acceptLanguage string) language.Tag {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return defaultTag
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return defaultTag
	}
	return supported[idx]
}

// WithLanguage 将语言写入 context
func WithLanguage(ctx context.Context, tag language.Tag) context.Context {
	return context.WithValue(ctx, ctxKey{}, tag)
}

// FromContext 读取 context 中的语言
func FromContext(ctx context.Context) language.Tag {
	if ctx != nil {
		if tag, ok := ctx.Value(ctxKey{}).(language.Tag); ok {
			return tag
		}
	}
	return defaultTag
}

// T 翻译 key，未登记的 key 原样返回
func T(ctx context.Context, key string, args ...interface{}) string {
	p := message.NewPrinter(FromContext(ctx), message.Catalog(builder))
	return p.Sprintf(key, args...)
}
