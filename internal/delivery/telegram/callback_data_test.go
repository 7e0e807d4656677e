package telegram

import "testing"

func TestCallbackDataRoundTrip(t *testing.T) {
	tests := []struct {
		build  string
		action string
		params []string
	}{
		{buildQuizStartCallback(), actionQuiz, []string{quizStart}},
		{buildQuizNextCallback(), actionQuiz, []string{quizNext}},
	}

	for _, tc := range tests {
		decoded := decodeCallback(tc.build)
		if decoded.Action != tc.action {
			t.Errorf("decode(%q).Action = %q, want %q", tc.build, decoded.Action, tc.action)
		}
		if len(decoded.Params) != len(tc.params) {
			t.Fatalf("decode(%q).Params = %v, want %v", tc.build, decoded.Params, tc.params)
		}
		for i, p := range tc.params {
			if decoded.Params[i] != p {
				t.Errorf("decode(%q).Params[%d] = %q, want %q", tc.build, i, decoded.Params[i], p)
			}
		}
	}
}

func TestDecodeCallbackForeignData(t *testing.T) {
	decoded := decodeCallback("settings:menu")
	if decoded.Action == actionQuiz {
		t.Errorf("foreign data decoded as quiz action: %+v", decoded)
	}

	decoded = decodeCallback("")
	if decoded.Action == actionQuiz {
		t.Errorf("empty data decoded as quiz action: %+v", decoded)
	}
}
