// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package optics

import "context"

// ReaderResult is an environment-reading asynchronous computation: given a
// context and an environment of type R, it yields Either a failure of type E
// or a value of type A. Computations are values — nothing runs until one is
// applied to a context and environment.
type ReaderResult[R, E, A any] func(ctx context.Context, env R) Either[E, A]

// OkReader lifts a pure value into a ReaderResult.
func OkReader[R, E, A any](a A) ReaderResult[R, E, A] {
	return func(context.Context, R) Either[E, A] {
		return Right[E](a)
	}
}

// FailReader lifts a failure into a ReaderResult.
func FailReader[R, E, A any](e E) ReaderResult[R, E, A] {
	return func(context.Context, R) Either[E, A] {
		return Left[E, A](e)
	}
}

// AskReader yields the environment itself.
func AskReader[R, E any]() ReaderResult[R, E, R] {
	return func(_ context.Context, env R) Either[E, R] {
		return Right[E](env)
	}
}

// AsksReader yields a pure projection of the environment.
func AsksReader[R, E, A any](f func(R) A) ReaderResult[R, E, A] {
	return func(_ context.Context, env R) Either[E, A] {
		return Right[E](f(env))
	}
}

// ReaderFromEither lifts an Either into a ReaderResult.
func ReaderFromEither[R, E, A any](e Either[E, A]) ReaderResult[R, E, A] {
	return func(context.Context, R) Either[E, A] {
		return e
	}
}

// ReaderFromOption lifts an Option into a ReaderResult, producing the
// failure from onNone when the option is absent.
func ReaderFromOption[R, E, A any](o Option[A], onNone func() E) ReaderResult[R, E, A] {
	return func(context.Context, R) Either[E, A] {
		if a, ok := o.Get(); ok {
			return Right[E](a)
		}
		return Left[E, A](onNone())
	}
}

// MapReader applies a pure function to the success value.
func MapReader[R, E, A, B any](m ReaderResult[R, E, A], f func(A) B) ReaderResult[R, E, B] {
	return func(ctx context.Context, env R) Either[E, B] {
		return MapEither(m(ctx, env), f)
	}
}

// MapLeftReader applies a pure function to the failure value.
func MapLeftReader[R, E, F, A any](m ReaderResult[R, E, A], f func(E) F) ReaderResult[R, F, A] {
	return func(ctx context.Context, env R) Either[F, A] {
		return MapLeftEither(m(ctx, env), f)
	}
}

// ChainReader sequences two ReaderResult computations. A failure in the
// first short-circuits without running the second.
func ChainReader[R, E, A, B any](m ReaderResult[R, E, A], f func(A) ReaderResult[R, E, B]) ReaderResult[R, E, B] {
	return func(ctx context.Context, env R) Either[E, B] {
		result := m(ctx, env)
		a, ok := result.GetRight()
		if !ok {
			l, _ := result.GetLeft()
			return Left[E, B](l)
		}
		return f(a)(ctx, env)
	}
}

// PreviewEnv lifts an Exact or Partial optic over the environment into a
// ReaderResult yielding the optional focus.
func PreviewEnv[E, R, A any](o Optic[R, A]) ReaderResult[R, E, Option[A]] {
	view := o.partialView()
	return func(_ context.Context, env R) Either[E, Option[A]] {
		return Right[E](view(env))
	}
}

// CollectEnv lifts any optic over the environment into a ReaderResult
// yielding every focus value.
func CollectEnv[E, R, A any](o Optic[R, A]) ReaderResult[R, E, []A] {
	view := o.manyView()
	return func(_ context.Context, env R) Either[E, []A] {
		return Right[E](view(env))
	}
}
