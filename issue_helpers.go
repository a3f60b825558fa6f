package valueschema

import "github.com/reoring/valueschema/i18n"

// NewIssue creates a root-path Issue whose message is rendered from data.
func NewIssue(code string, data map[string]string) Issue {
	var params map[string]any
	if len(data) > 0 {
		params = make(map[string]any, len(data))
		for k, v := range data {
			params[k] = v
		}
	}
	return Issue{Path: "/", Code: code, Message: i18n.T(code, data), Params: params}
}

// Rebase prefixes every issue path with the JSON Pointer prefix.
func Rebase(iss Issues, prefix string) Issues {
	out := make(Issues, len(iss))
	for i, it := range iss {
		if it.Path == "/" || it.Path == "" {
			it.Path = prefix
		} else {
			it.Path = prefix + it.Path
		}
		out[i] = it
	}
	return out
}
