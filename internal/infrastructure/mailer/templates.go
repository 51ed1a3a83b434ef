package mailer

import (
	"fmt"
	"strings"
	"text/template"

	"sien_official/internal/domain/entities"
	"sien_official/internal/usecase/interfaces"
)

const noneText = "なし"

var funcs = template.FuncMap{
	"field": func(o entities.Order, name string) string { return o.Field(name) },
	"orNone": func(s string) string {
		if strings.TrimSpace(s) == "" {
			return noneText
		}
		return s
	},
}

var newOrderBody = template.Must(template.New("new_order").Funcs(funcs).Parse(`
ご依頼者名：{{field . "ご依頼者名"}}

メールアドレス：{{field . "メールアドレス"}}

TwitterID(任意)：{{field . "TwitterID(任意)"}}

希望する連絡手段：{{field . "希望する連絡手段"}}

曲名：{{field . "曲名"}}

ご依頼内容：Mix＆Mastering

プラン：{{field . "プラン"}}

レコーディング済み音源：{{field . "レコーディング済み音源" | orNone}}

キー変更：{{field . "キー変更"}}

参考URL(任意)：{{field . "参考URL(任意)" | orNone}}

イメージ
{{field . "ご要望・ご質問・特記事項など" | orNone}}
`))

var deadlineAlertBody = template.Must(template.New("deadline_alert").Funcs(funcs).Parse(`
以下のご依頼に関する納期アラートが発動しました。
納品予定日まであと【1日】です。

--------------------------
納品予定日：{{.Deadline}}
ご依頼者名：{{field . "ご依頼者名"}}
曲名：{{field . "曲名"}}
プラン：{{field . "プラン"}}
--------------------------
`))

// Render returns the subject and plain-text body for a notification.
func Render(tpl interfaces.NotificationTemplate, o entities.Order) (subject, body string, err error) {
	var t *template.Template
	switch tpl {
	case interfaces.TemplateNewOrder:
		subject = fmt.Sprintf("【新規依頼】%s様より", o.Field(entities.FieldClientName))
		t = newOrderBody
	case interfaces.TemplateDeadlineAlert:
		subject = "【納期アラート】納期が近づいています"
		t = deadlineAlertBody
	default:
		return "", "", fmt.Errorf("unknown notification template %q", tpl)
	}

	var b strings.Builder
	if err := t.Execute(&b, o); err != nil {
		return "", "", fmt.Errorf("rendering %s: %w", tpl, err)
	}
	return subject, b.String(), nil
}
