// internal/webutil/validator.go
package webutil

import (
	"log"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en" // 英語ロケール
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

// Validator はアプリケーション全体で共有されるバリデータインスタンスです。
var Validator *validator.Validate

// Trans はエラーメッセージを翻訳するためのトランスレータです。
var Trans ut.Translator

// fieldNames はメッセージに出すフィールド名 (json タグ → 表示名)
var fieldNames = map[string]string{
	"chat_id":  "Chat",
	"text":     "Message text",
	"callback": "Button data",
}

func init() {
	Validator = validator.New()

	// JSONタグからフィールド名を取得するように設定
	Validator.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	english := en.New()
	uni := ut.New(english, english)
	var found bool
	Trans, found = uni.GetTranslator("en")
	if !found {
		log.Fatal("translator not found")
	}
	if err := en_translations.RegisterDefaultTranslations(Validator, Trans); err != nil {
		log.Fatal(err)
	}

	registerTranslation := func(tag string, msg string) {
		Validator.RegisterTranslation(tag, Trans, func(ut ut.Translator) error {
			return ut.Add(tag, msg, true)
		}, func(ut ut.Translator, fe validator.FieldError) string {
			t, _ := ut.T(tag, displayName(fe.Field()), fe.Param())
			return t
		})
	}

	registerTranslation("required", "{0} is required.")
	registerTranslation("required_without", "{0} is required when {1} is empty.")
	registerTranslation("max", "{0} must be at most {1} characters.")
}

func displayName(field string) string {
	if name, ok := fieldNames[field]; ok {
		return name
	}
	return field
}
