package lazyk

import (
	"fmt"

	"github.com/raymyers/ralph-elc/pkg/lambda"
)

// The lambda-calculus program reads and writes lists of bytes, each byte
// a list of eight bits, most significant first, with 0 as \x.\y.x. Lazy K
// passes a list of Church numerals ending in 256 and expects one back. The
// terms below convert between the two. Each is closed and takes the terms
// it depends on as leading arguments.
const (
	fix = `\f.(\x.f (x x)) (\x.f (x x))`

	// bitStep adds carry c to bit z and passes the new bit and carry to k.
	bitStep = `\z.\c.\k.k (c (z (\x.\y.y) (\x.\y.x)) z) (c (z (\x.\y.y) (\x.\y.x)) (\x.\y.y))`

	// counterInc increments a counter \r.r o b7 .. b0, where o records
	// overflow past 255.
	counterInc = `\h.\s.s (\o.\a.\b.\c.\d.\e.\f.\g.\i.
		h i (\x.\y.x) (\A.\J.
		h g J (\B.\K.
		h f K (\C.\L.
		h e L (\D.\M.
		h d M (\E.\N.
		h c N (\F.\O.
		h b O (\G.\P.
		h a P (\H.\Q.
		\r.r (Q (\x.\y.x) o) H G F E D C B A)))))))))`

	counterZero = `\r.r (\x.\y.y) (\x.\y.x) (\x.\y.x) (\x.\y.x) (\x.\y.x) (\x.\y.x) (\x.\y.x) (\x.\y.x) (\x.\y.x)`

	// fromNumerals counts each numeral up from zero and ends the byte list
	// at the first one that overflows.
	fromNumerals = `\Y.\u.\z.Y (\r.\l.l (\n.\t.n u z (\o.\a.\b.\c.\d.\e.\f.\g.\i.
		o (\x.\y.y) (\p.p
			(\p.p a (\p.p b (\p.p c (\p.p d (\p.p e (\p.p f (\p.p g (\p.p i (\x.\y.y)))))))))
			(r t)))))`

	// numeral folds a bit list into acc*2+bit.
	numeral = `\Y.\b.Y (\g.\l.\a.l (\h.\t.\d.g t (\f.\x.a f (a f (h x (f x))))) a) b (\f.\x.x)`

	// toNumerals maps the output bytes and ends the list with 256 (4^4).
	toNumerals = `\Y.\n.Y (\r.\o.o (\h.\t.\d.\p.p (n h) (r t))
		(\p.p ((\f.\x.f (f (f (f x)))) (\f.\x.f (f (f (f x))))) (\x.\y.y)))`

	wrapIO = `\F.\N.\p.\i.N (p (F i))`
)

// ioAdapter is applied to a byte-list program to give a Lazy K program.
var ioAdapter = buildAdapter()

func buildAdapter() lambda.Term {
	y := mustParse(fix)
	from := apply(mustParse(fromNumerals), y,
		apply(mustParse(counterInc), mustParse(bitStep)),
		mustParse(counterZero))
	to := apply(mustParse(toNumerals), y, apply(mustParse(numeral), y))
	return apply(mustParse(wrapIO), from, to)
}

func apply(f lambda.Term, args ...lambda.Term) lambda.Term {
	for _, a := range args {
		f = lambda.App{Fun: f, Arg: a}
	}
	return f
}

func mustParse(src string) lambda.Term {
	t, err := lambda.ParseText(src)
	if err != nil {
		panic(fmt.Sprintf("lazyk: %v", err))
	}
	return t
}

// adaptIO wraps a byte-list program for Lazy K's numeral streams.
func adaptIO(prog lambda.Term) lambda.Term {
	return apply(ioAdapter, prog)
}
