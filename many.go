package encryptconfig

// Tuple overloads for batched access to several configuration types at
// once. Guards are acquired strictly in declared order and per type —
// there is no transactional guarantee across the tuple, and overlapping
// concurrent tuples acquired in different orders can conflict (panic)
// exactly as the single-type operations would. Arities 2 through 8 are
// provided; compose calls for anything wider.

func Get2[A, B any, PA Source[A], PB Source[B]](c *Config) (*Ref[A], *Ref[B]) {
	return Get[A, PA](c), Get[B, PB](c)
}

func Get3[A, B, C any, PA Source[A], PB Source[B], PC Source[C]](c *Config) (*Ref[A], *Ref[B], *Ref[C]) {
	return Get[A, PA](c), Get[B, PB](c), Get[C, PC](c)
}

func Get4[A, B, C, D any, PA Source[A], PB Source[B], PC Source[C], PD Source[D]](c *Config) (*Ref[A], *Ref[B], *Ref[C], *Ref[D]) {
	return Get[A, PA](c), Get[B, PB](c), Get[C, PC](c), Get[D, PD](c)
}

func Get5[A, B, C, D, E any, PA Source[A], PB Source[B], PC Source[C], PD Source[D], PE Source[E]](c *Config) (*Ref[A], *Ref[B], *Ref[C], *Ref[D], *Ref[E]) {
	return Get[A, PA](c), Get[B, PB](c), Get[C, PC](c), Get[D, PD](c), Get[E, PE](c)
}

func Get6[A, B, C, D, E, F any, PA Source[A], PB Source[B], PC Source[C], PD Source[D], PE Source[E], PF Source[F]](c *Config) (*Ref[A], *Ref[B], *Ref[C], *Ref[D], *Ref[E], *Ref[F]) {
	return Get[A, PA](c), Get[B, PB](c), Get[C, PC](c), Get[D, PD](c), Get[E, PE](c), Get[F, PF](c)
}

func Get7[A, B, C, D, E, F, G any, PA Source[A], PB Source[B], PC Source[C], PD Source[D], PE Source[E], PF Source[F], PG Source[G]](c *Config) (*Ref[A], *Ref[B], *Ref[C], *Ref[D], *Ref[E], *Ref[F], *Ref[G]) {
	return Get[A, PA](c), Get[B, PB](c), Get[C, PC](c), Get[D, PD](c), Get[E, PE](c), Get[F, PF](c), Get[G, PG](c)
}

func Get8[A, B, C, D, E, F, G, H any, PA Source[A], PB Source[B], PC Source[C], PD Source[D], PE Source[E], PF Source[F], PG Source[G], PH Source[H]](c *Config) (*Ref[A], *Ref[B], *Ref[C], *Ref[D], *Ref[E], *Ref[F], *Ref[G], *Ref[H]) {
	return Get[A, PA](c), Get[B, PB](c), Get[C, PC](c), Get[D, PD](c), Get[E, PE](c), Get[F, PF](c), Get[G, PG](c), Get[H, PH](c)
}

func GetMut2[A, B any, PA Source[A], PB Source[B]](c *Config) (*Mut[A], *Mut[B]) {
	return GetMut[A, PA](c), GetMut[B, PB](c)
}

func GetMut3[A, B, C any, PA Source[A], PB Source[B], PC Source[C]](c *Config) (*Mut[A], *Mut[B], *Mut[C]) {
	return GetMut[A, PA](c), GetMut[B, PB](c), GetMut[C, PC](c)
}

func GetMut4[A, B, C, D any, PA Source[A], PB Source[B], PC Source[C], PD Source[D]](c *Config) (*Mut[A], *Mut[B], *Mut[C], *Mut[D]) {
	return GetMut[A, PA](c), GetMut[B, PB](c), GetMut[C, PC](c), GetMut[D, PD](c)
}

func GetMut5[A, B, C, D, E any, PA Source[A], PB Source[B], PC Source[C], PD Source[D], PE Source[E]](c *Config) (*Mut[A], *Mut[B], *Mut[C], *Mut[D], *Mut[E]) {
	return GetMut[A, PA](c), GetMut[B, PB](c), GetMut[C, PC](c), GetMut[D, PD](c), GetMut[E, PE](c)
}

func GetMut6[A, B, C, D, E, F any, PA Source[A], PB Source[B], PC Source[C], PD Source[D], PE Source[E], PF Source[F]](c *Config) (*Mut[A], *Mut[B], *Mut[C], *Mut[D], *Mut[E], *Mut[F]) {
	return GetMut[A, PA](c), GetMut[B, PB](c), GetMut[C, PC](c), GetMut[D, PD](c), GetMut[E, PE](c), GetMut[F, PF](c)
}

func GetMut7[A, B, C, D, E, F, G any, PA Source[A], PB Source[B], PC Source[C], PD Source[D], PE Source[E], PF Source[F], PG Source[G]](c *Config) (*Mut[A], *Mut[B], *Mut[C], *Mut[D], *Mut[E], *Mut[F], *Mut[G]) {
	return GetMut[A, PA](c), GetMut[B, PB](c), GetMut[C, PC](c), GetMut[D, PD](c), GetMut[E, PE](c), GetMut[F, PF](c), GetMut[G, PG](c)
}

func GetMut8[A, B, C, D, E, F, G, H any, PA Source[A], PB Source[B], PC Source[C], PD Source[D], PE Source[E], PF Source[F], PG Source[G], PH Source[H]](c *Config) (*Mut[A], *Mut[B], *Mut[C], *Mut[D], *Mut[E], *Mut[F], *Mut[G], *Mut[H]) {
	return GetMut[A, PA](c), GetMut[B, PB](c), GetMut[C, PC](c), GetMut[D, PD](c), GetMut[E, PE](c), GetMut[F, PF](c), GetMut[G, PG](c), GetMut[H, PH](c)
}

func Take2[A, B any, PA Source[A], PB Source[B]](c *Config) (A, B) {
	return Take[A, PA](c), Take[B, PB](c)
}

func Take3[A, B, C any, PA Source[A], PB Source[B], PC Source[C]](c *Config) (A, B, C) {
	return Take[A, PA](c), Take[B, PB](c), Take[C, PC](c)
}

func Take4[A, B, C, D any, PA Source[A], PB Source[B], PC Source[C], PD Source[D]](c *Config) (A, B, C, D) {
	return Take[A, PA](c), Take[B, PB](c), Take[C, PC](c), Take[D, PD](c)
}

func Take5[A, B, C, D, E any, PA Source[A], PB Source[B], PC Source[C], PD Source[D], PE Source[E]](c *Config) (A, B, C, D, E) {
	return Take[A, PA](c), Take[B, PB](c), Take[C, PC](c), Take[D, PD](c), Take[E, PE](c)
}

func Take6[A, B, C, D, E, F any, PA Source[A], PB Source[B], PC Source[C], PD Source[D], PE Source[E], PF Source[F]](c *Config) (A, B, C, D, E, F) {
	return Take[A, PA](c), Take[B, PB](c), Take[C, PC](c), Take[D, PD](c), Take[E, PE](c), Take[F, PF](c)
}

func Take7[A, B, C, D, E, F, G any, PA Source[A], PB Source[B], PC Source[C], PD Source[D], PE Source[E], PF Source[F], PG Source[G]](c *Config) (A, B, C, D, E, F, G) {
	return Take[A, PA](c), Take[B, PB](c), Take[C, PC](c), Take[D, PD](c), Take[E, PE](c), Take[F, PF](c), Take[G, PG](c)
}

func Take8[A, B, C, D, E, F, G, H any, PA Source[A], PB Source[B], PC Source[C], PD Source[D], PE Source[E], PF Source[F], PG Source[G], PH Source[H]](c *Config) (A, B, C, D, E, F, G, H) {
	return Take[A, PA](c), Take[B, PB](c), Take[C, PC](c), Take[D, PD](c), Take[E, PE](c), Take[F, PF](c), Take[G, PG](c), Take[H, PH](c)
}
