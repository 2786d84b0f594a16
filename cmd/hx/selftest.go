package main

import (
	"fmt"

	"github.com/hexon-format/go-hexon"

	"github.com/scott-cotton/cli"
)

type selftestCase struct {
	name string
	in   string
	want string
}

var selftestCases = []selftestCase{
	{
		name: "number",
		in:   `port = 0x1A`,
		want: "{\n  \"port\": 26\n}",
	},
	{
		name: "array",
		in:   `ports = #( 0x01 0x02 0x03 )`,
		want: "{\n  \"ports\": [1, 2, 3]\n}",
	},
	{
		name: "constants",
		in:   "global MAX_SIZE = 0x100\nsize = ?[MAX_SIZE]",
		want: "{\n  \"size\": 256\n}",
	},
	{
		name: "object",
		in:   `config = { timeout = 0x1E enabled = true }`,
		want: "{\n  \"config\": {\n    \"enabled\": true,\n    \"timeout\": 30\n  }\n}",
	},
	{
		name: "combined",
		in:   "global PORT = 0x50\nserver = { port = ?[PORT] hosts = #( \"host1\" \"host2\" ) }",
		want: "{\n  \"server\": {\n    \"hosts\": [\"host1\", \"host2\"],\n    \"port\": 80\n  }\n}",
	},
	{
		name: "nested objects",
		in:   `app = { database = { host = "localhost" port = 0x2276 } }`,
		want: "{\n  \"app\": {\n    \"database\": {\n      \"host\": \"localhost\",\n      \"port\": 8822\n    }\n  }\n}",
	},
	{
		name: "mixed types",
		in:   `settings = { numbers = #( 0x01 0x02 ) strings = #( "a" "b" ) flag = true }`,
		want: "{\n  \"settings\": {\n    \"flag\": true,\n    \"numbers\": [1, 2],\n    \"strings\": [\"a\", \"b\"]\n  }\n}",
	},
	{
		name: "multiple constants",
		in:   "global WIDTH = 0x500\nglobal HEIGHT = 0x300\ndimensions = { width = ?[WIDTH] height = ?[HEIGHT] }",
		want: "{\n  \"dimensions\": {\n    \"height\": 768,\n    \"width\": 1280\n  }\n}",
	},
}

func selftest(cfg *SelftestConfig, cc *cli.Context, args []string) error {
	if _, err := cfg.Selftest.Parse(cc, args); err != nil {
		cfg.Selftest.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	failed := 0
	for i, tc := range selftestCases {
		got, err := hexon.TranslateString(tc.in)
		switch {
		case err != nil:
			fmt.Fprintf(cc.Out, "selftest %d (%s): FAIL: %v\n", i+1, tc.name, err)
			failed++
		case got != tc.want:
			fmt.Fprintf(cc.Out, "selftest %d (%s): FAIL: got %q, want %q\n", i+1, tc.name, got, tc.want)
			failed++
		default:
			fmt.Fprintf(cc.Out, "selftest %d (%s): ok\n", i+1, tc.name)
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d selftests failed", failed, len(selftestCases))
	}
	fmt.Fprintf(cc.Out, "%d selftests passed\n", len(selftestCases))
	return nil
}
