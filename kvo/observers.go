package kvo

func as[T any](v any) (t T) {
	t, _ = v.(T)
	return t
}

func Observe1[T0 any](
	o0 *Object, k0 string,
	fn func(T0) error,
) (stop func()) {
	handler := func(any) error {
		return fn(
			as[T0](o0.Get(k0)),
		)
	}
	o0.OnChanged(k0, handler)
	return func() {
		o0.OnChanged(k0, nil)
	}
}

func Observe2[T0, T1 any](
	o0 *Object, k0 string,
	o1 *Object, k1 string,
	fn func(T0, T1) error,
) (stop func()) {
	handler := func(any) error {
		return fn(
			as[T0](o0.Get(k0)),
			as[T1](o1.Get(k1)),
		)
	}
	o0.OnChanged(k0, handler)
	o1.OnChanged(k1, handler)
	return func() {
		o0.OnChanged(k0, nil)
		o1.OnChanged(k1, nil)
	}
}

func Observe3[T0, T1, T2 any](
	o0 *Object, k0 string,
	o1 *Object, k1 string,
	o2 *Object, k2 string,
	fn func(T0, T1, T2) error,
) (stop func()) {
	handler := func(any) error {
		return fn(
			as[T0](o0.Get(k0)),
			as[T1](o1.Get(k1)),
			as[T2](o2.Get(k2)),
		)
	}
	o0.OnChanged(k0, handler)
	o1.OnChanged(k1, handler)
	o2.OnChanged(k2, handler)
	return func() {
		o0.OnChanged(k0, nil)
		o1.OnChanged(k1, nil)
		o2.OnChanged(k2, nil)
	}
}

func Observe4[T0, T1, T2, T3 any](
	o0 *Object, k0 string,
	o1 *Object, k1 string,
	o2 *Object, k2 string,
	o3 *Object, k3 string,
	fn func(T0, T1, T2, T3) error,
) (stop func()) {
	handler := func(any) error {
		return fn(
			as[T0](o0.Get(k0)),
			as[T1](o1.Get(k1)),
			as[T2](o2.Get(k2)),
			as[T3](o3.Get(k3)),
		)
	}
	o0.OnChanged(k0, handler)
	o1.OnChanged(k1, handler)
	o2.OnChanged(k2, handler)
	o3.OnChanged(k3, handler)
	return func() {
		o0.OnChanged(k0, nil)
		o1.OnChanged(k1, nil)
		o2.OnChanged(k2, nil)
		o3.OnChanged(k3, nil)
	}
}

func Observe5[T0, T1, T2, T3, T4 any](
	o0 *Object, k0 string,
	o1 *Object, k1 string,
	o2 *Object, k2 string,
	o3 *Object, k3 string,
	o4 *Object, k4 string,
	fn func(T0, T1, T2, T3, T4) error,
) (stop func()) {
	handler := func(any) error {
		return fn(
			as[T0](o0.Get(k0)),
			as[T1](o1.Get(k1)),
			as[T2](o2.Get(k2)),
			as[T3](o3.Get(k3)),
			as[T4](o4.Get(k4)),
		)
	}
	o0.OnChanged(k0, handler)
	o1.OnChanged(k1, handler)
	o2.OnChanged(k2, handler)
	o3.OnChanged(k3, handler)
	o4.OnChanged(k4, handler)
	return func() {
		o0.OnChanged(k0, nil)
		o1.OnChanged(k1, nil)
		o2.OnChanged(k2, nil)
		o3.OnChanged(k3, nil)
		o4.OnChanged(k4, nil)
	}
}

func Observe6[T0, T1, T2, T3, T4, T5 any](
	o0 *Object, k0 string,
	o1 *Object, k1 string,
	o2 *Object, k2 string,
	o3 *Object, k3 string,
	o4 *Object, k4 string,
	o5 *Object, k5 string,
	fn func(T0, T1, T2, T3, T4, T5) error,
) (stop func()) {
	handler := func(any) error {
		return fn(
			as[T0](o0.Get(k0)),
			as[T1](o1.Get(k1)),
			as[T2](o2.Get(k2)),
			as[T3](o3.Get(k3)),
			as[T4](o4.Get(k4)),
			as[T5](o5.Get(k5)),
		)
	}
	o0.OnChanged(k0, handler)
	o1.OnChanged(k1, handler)
	o2.OnChanged(k2, handler)
	o3.OnChanged(k3, handler)
	o4.OnChanged(k4, handler)
	o5.OnChanged(k5, handler)
	return func() {
		o0.OnChanged(k0, nil)
		o1.OnChanged(k1, nil)
		o2.OnChanged(k2, nil)
		o3.OnChanged(k3, nil)
		o4.OnChanged(k4, nil)
		o5.OnChanged(k5, nil)
	}
}

func Observe7[T0, T1, T2, T3, T4, T5, T6 any](
	o0 *Object, k0 string,
	o1 *Object, k1 string,
	o2 *Object, k2 string,
	o3 *Object, k3 string,
	o4 *Object, k4 string,
	o5 *Object, k5 string,
	o6 *Object, k6 string,
	fn func(T0, T1, T2, T3, T4, T5, T6) error,
) (stop func()) {
	handler := func(any) error {
		return fn(
			as[T0](o0.Get(k0)),
			as[T1](o1.Get(k1)),
			as[T2](o2.Get(k2)),
			as[T3](o3.Get(k3)),
			as[T4](o4.Get(k4)),
			as[T5](o5.Get(k5)),
			as[T6](o6.Get(k6)),
		)
	}
	o0.OnChanged(k0, handler)
	o1.OnChanged(k1, handler)
	o2.OnChanged(k2, handler)
	o3.OnChanged(k3, handler)
	o4.OnChanged(k4, handler)
	o5.OnChanged(k5, handler)
	o6.OnChanged(k6, handler)
	return func() {
		o0.OnChanged(k0, nil)
		o1.OnChanged(k1, nil)
		o2.OnChanged(k2, nil)
		o3.OnChanged(k3, nil)
		o4.OnChanged(k4, nil)
		o5.OnChanged(k5, nil)
		o6.OnChanged(k6, nil)
	}
}

func Observe8[T0, T1, T2, T3, T4, T5, T6, T7 any](
	o0 *Object, k0 string,
	o1 *Object, k1 string,
	o2 *Object, k2 string,
	o3 *Object, k3 string,
	o4 *Object, k4 string,
	o5 *Object, k5 string,
	o6 *Object, k6 string,
	o7 *Object, k7 string,
	fn func(T0, T1, T2, T3, T4, T5, T6, T7) error,
) (stop func()) {
	handler := func(any) error {
		return fn(
			as[T0](o0.Get(k0)),
			as[T1](o1.Get(k1)),
			as[T2](o2.Get(k2)),
			as[T3](o3.Get(k3)),
			as[T4](o4.Get(k4)),
			as[T5](o5.Get(k5)),
			as[T6](o6.Get(k6)),
			as[T7](o7.Get(k7)),
		)
	}
	o0.OnChanged(k0, handler)
	o1.OnChanged(k1, handler)
	o2.OnChanged(k2, handler)
	o3.OnChanged(k3, handler)
	o4.OnChanged(k4, handler)
	o5.OnChanged(k5, handler)
	o6.OnChanged(k6, handler)
	o7.OnChanged(k7, handler)
	return func() {
		o0.OnChanged(k0, nil)
		o1.OnChanged(k1, nil)
		o2.OnChanged(k2, nil)
		o3.OnChanged(k3, nil)
		o4.OnChanged(k4, nil)
		o5.OnChanged(k5, nil)
		o6.OnChanged(k6, nil)
		o7.OnChanged(k7, nil)
	}
}
