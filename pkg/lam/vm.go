package lam

// vm is the lambda-calculus interpreter the program is applied to.
const vm = "" +
	"(\\x.(\\y.(\\z.(\\a.(\\b.((\\c.((\\d.((\\e.((\\f.((\\g.((\\h.((a (((\\i.((i ((" +
	"d (\\j.(\\k.((k (\\l.(\\m.(\\l.(\\o.((o k) (j m))))))) k)))) a)) ((i z) (d (\\" +
	"j.(\\k.(\\l.(\\b.(\\n.(\\o.(\\p.((\\q.((\\r.((\\s.((((((n (\\t.(\\u.(\\v.(\\w." +
	"v))))) (\\t.t)) (\\t.(\\u.(\\v.u)))) (\\t.(\\u.u))) ((o (\\t.(\\u.(\\v.((((((j" +
	" k) l) b) t) u) p))))) o)) (n (\\t.(\\u.((\\v.(t (\\w.(\\A.(\\B.((((\\A.(\\B.(" +
	"\\E.((A (E B)) ((q B) E))))) A) B) (\\C.(\\D.((((((((w (((D ((\\E.((b (\\F.(\\" +
	"G.(\\H.((E ((y (\\I.(\\J.((J (\\I.(\\L.I))) I)))) F)) G))))) ((E c) b))) (\\E." +
	"(\\b.(((r B) E) (((((j k) l) b) u) o)))))) (\\E.((E ((y (\\F.(F (\\G.(\\H.H)))" +
	")) C)) (v p)))) A)) (D (\\E.(\\F.(\\G.(\\H.((((\\A.(\\B.(\\K.((A (K B)) ((q B)" +
	" K))))) F) G) ((q H) (\\I.(\\J.(((E ((e I) C)) (s J)) (v p)))))))))))) ((D (\\" +
	"E.(\\F.((\\c.(((((f (\\H.(\\I.I))) (E (((q F) e) C))) c) c) (\\H.(r F)))) c)))" +
	") v)) (s C)) ((((h k) C) (r D)) v)) ((((((((q D) ((g k) C)) j) l) b) u) o) p))" +
	" ((D (\\D.(\\F.((((q D) ((f F) F)) C) (\\G.(r D)))))) v)) (((r D) C) v))))))))" +
	")) (((((j k) l) b) u) o))))))) (\\s.(((h l) s) (\\a.((a (((j k) l) b)) p))))))" +
	" (g p))) (h p))))))))))))) (\\i.(\\j.((((d (\\k.(\\i.(\\m.(\\j.((i (\\o.(\\o.(" +
	"\\o.((m (\\o.(\\s.(\\o.(((k i) s) (\\u.(\\i.(((k i) s) (\\w.(j (\\A.((A u) w))" +
	")))))))))) (i j)))))) ((j i) i))))))) i) c) (\\k.(\\l.(j k))))))) b)) (\\i.(\\" +
	"j.j)))) (d (\\h.(\\i.(\\j.(\\k.((j (\\l.(\\m.(\\n.((i (\\o.(\\p.(\\n.((((l (h " +
	"o)) (h p)) m) k))))) (k c)))))) (k i))))))))) (d (\\g.(\\h.(\\i.(\\j.(\\k.((i " +
	"(\\l.(\\m.(\\n.((\\k.((h (\\p.(\\q.(\\n.((l (h k)) ((k q) p)))))) ((k (\\p.(\\" +
	"q.q))) (\\p.(\\q.q))))) (\\o.((((g o) m) j) (\\p.(\\q.((l (k (\\r.((r p) q))))" +
	" (k (\\r.((r q) p))))))))))))) (k j)))))))))) (d (\\f.(\\g.(\\h.(\\i.(\\j.(\\k" +
	".((i (\\l.(\\m.(\\n.(j (\\o.(\\p.(((((f g) h) m) p) (\\q.(\\r.((\\s.((\\o.((\\" +
	"u.((\\k.((\\k.((((u o) q) (k (\\A.(\\B.A)))) (k (\\A.(\\B.B))))) ((((u q) s) (" +
	"k (\\w.(\\A.w)))) (k (\\w.(\\A.A)))))) (\\v.(\\w.((k w) (\\u.((u v) r))))))) (" +
	"\\u.(\\v.((l ((o u) v)) ((o v) u)))))) ((h o) ((o (\\t.(\\u.u))) (\\t.(\\u.t))" +
	")))) ((q (\\s.(\\t.t))) (\\s.(\\t.s)))))))))))))) ((k g) i))))))))))) (d (\\e." +
	"(\\f.(\\g.((f (\\h.(\\i.(\\j.(g (\\k.(\\l.((\\m.((h ((k m) (\\n.(\\o.(\\p.o)))" +
	")) ((k (\\n.(\\o.(\\p.p)))) m))) ((e i) l))))))))) (\\h.(\\i.(\\j.h)))))))))) " +
	"(\\d.((\\e.(d (e e))) (\\e.(d (e e))))))) ((\\c.((y c) ((x c) (\\d.(\\e.e)))))" +
	" (\\c.(\\d.((d (\\c.(\\f.c))) c))))))))))"
