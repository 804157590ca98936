package tunhong_test

import (
	"fmt"

	tunhong "github.com/riverfjs/tunhong-go"
)

func ExampleParse() {
	out, err := tunhong.Parse("Some 漢字 and བོད་ཡིག་.", tunhong.WithTagMarkup(nil))
	if err != nil {
		panic(err)
	}
	fmt.Println(out)
	// Output: Some <span lang="zh">漢字</span> and <span lang="bo">བོད་ཡིག་</span>.
}

func ExampleNew() {
	p, err := tunhong.New(tunhong.WithTagMarkup(tunhong.TagConfig{
		tunhong.ModeChinese: {Open: "[c]", Close: "[ↄ]"},
		tunhong.ModeTibetan: {Open: "[t]", Close: "[ʇ]"},
	}))
	if err != nil {
		panic(err)
	}
	out, _ := p.Parse("Dunhuang spells 燉煌 in Chinese and ཏུན་ཧོང་ in Tibetan.")
	fmt.Println(out)
	// Output: Dunhuang spells [c]燉煌[ↄ] in Chinese and [t]ཏུན་ཧོང་[ʇ] in Tibetan.
}

func ExampleParser_Chunks() {
	p, _ := tunhong.New()
	for _, c := range p.Chunks("I like 香蕉!") {
		fmt.Printf("%s %q\n", c.Mode, c.Text)
	}
	// Output:
	// other "I like "
	// chinese "香蕉"
	// other "!"
}
